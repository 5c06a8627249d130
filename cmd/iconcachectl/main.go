// Command iconcachectl inspects GTK icon-theme caches.
package main

func main() {
	execute()
}
