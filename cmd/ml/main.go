package main

import "moodline/cmd/ml/root"

func main() {
	root.Execute()
}
