package main

import "github.com/logscrub/logscrub/cmd/logscrub"

func main() { logscrub.Execute() }
