package main

import (
	"flag"
	"log"
)

func parseArguments() {
	flag.BoolVar(&isCoordinator, "isCoordinator", false, "Is this instance the coordinator")
	flag.BoolVar(&isWorker, "isWorker", false, "Is this instance a worker")
	flag.StringVar(&settingsFile, "settingsFile", "", "Json file with the settings for this instance")
	flag.BoolVar(&diagnostics, "diagnostics", false, "Start a gops agent for this instance")

	flag.Parse()

	if !isWorker && !isCoordinator {
		log.Fatal("Please specify if this instance is the coordinator or a worker")
	}
	if isWorker && isCoordinator {
		log.Fatal("An instance is either the coordinator or a worker")
	}
}
