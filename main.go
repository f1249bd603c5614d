package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/umpire/internal/umpire/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := umpire(); err != nil {
		logrus.Fatal(err)
	}
}

func umpire() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
