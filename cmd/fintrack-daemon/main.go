package main

import (
	"fmt"

	"fintrack/config"
	"fintrack/workers/daemons"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	daemons.NewCronJob().Start()
}
