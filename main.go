package main

import "github.com/wangdayong228/posts-client/cmd"

func main() {
	cmd.Execute()
}
