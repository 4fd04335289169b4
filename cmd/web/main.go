package main

import "github.com/yellowboat/backoffice/internal/app"

func main() {
	app.Run()
}
