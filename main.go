package main

import (
	"fieldtrack.dev/backend/cmd/app"
)

func main() {
	app.Run()
}
