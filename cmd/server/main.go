package main

import "rhdesk/internal/app/server"

func main() {
	server.Run()
}
