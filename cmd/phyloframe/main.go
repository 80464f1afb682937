package main

import (
	"phyloframe/internal/app"
	"phyloframe/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
