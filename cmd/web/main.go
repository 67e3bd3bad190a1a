package main

import "fleamarket_backend/internal/app"

func main() {
	app.Run()
}
