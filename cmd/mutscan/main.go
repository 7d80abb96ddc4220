// cmd/mutscan/main.go
package main

import (
	"mutscan/internal/app"
	"mutscan/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
