package main

import "github.com/AJEETSINGHPATEL/jobportal-backend/internal/app"

func main() {
	app.Run()
}
