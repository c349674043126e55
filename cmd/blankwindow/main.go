package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/katrodriguez2504-ux/2143-OOP/pkg"
)

func main() {
	ebiten.SetWindowSize(pkg.BlankScreenWidth, pkg.BlankScreenHeight)
	ebiten.SetWindowTitle("Game of Life - Blank Window Demo")

	if err := ebiten.RunGame(&pkg.BlankWindow{}); err != nil && !errors.Is(err, pkg.ErrQuit) {
		log.Fatal(err)
	}
}
