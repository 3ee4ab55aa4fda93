package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/zeu5/rl-plot/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		log.Fatalln(err)
	}
}
