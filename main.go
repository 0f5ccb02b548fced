package main

import "github.com/subahdeepmistri/WorkOut-Planner-sub001/cmd"

func main() {
	cmd.Execute()
}
