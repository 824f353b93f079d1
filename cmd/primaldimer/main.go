// cmd/primaldimer/main.go
package main

import (
	"primaldimer/internal/app"
	"primaldimer/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
