package main

import "sitemap-sync/cmd"

func main() {
	cmd.Execute()
}
