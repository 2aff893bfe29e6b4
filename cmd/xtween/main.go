// Command xtween plays tween scenario files headlessly or in the terminal and
// prints the easing curves the engine knows about.
package main

func main() {
	Execute()
}
