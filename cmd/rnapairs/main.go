// cmd/rnapairs/main.go
package main

import (
	"rnapairs/internal/app"
	"rnapairs/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
