// The main package for the kgcrawl executable.
package main

import (
	"github.com/Abderrahmane-Najib/KG-project/cmd"
)

func main() {
	cmd.Execute()
}
