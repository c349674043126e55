package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/katrodriguez2504-ux/2143-OOP/pkg"
)

var patternsPath = flag.String("patterns", "patterns.json", "pattern document (.json) or pattern script (.tengo)")

func main() {
	flag.Parse()

	rand.Seed(time.Now().UnixNano())

	var (
		store *pkg.PatternStore
		err   error
	)

	if strings.HasSuffix(*patternsPath, ".tengo") {
		store, err = pkg.LoadPatternScript(*patternsPath)
	} else {
		store, err = pkg.LoadPatterns(*patternsPath)
	}

	if err != nil {
		log.Fatalf("load patterns: %v", err)
	}

	fmt.Println("Available patterns:")
	for _, name := range store.Names() {
		fmt.Printf(" - %s\n", name)
	}
	fmt.Printf("\nTotal patterns loaded: %d\n", store.Len())

	var choice string
	if flag.NArg() > 0 {
		choice = flag.Arg(0)
		fmt.Printf("\nUsing pattern from command line: %s\n", choice)
	} else {
		fmt.Print("\nEnter pattern name: ")
		if _, err := fmt.Fscan(os.Stdin, &choice); err != nil {
			log.Fatalf("read pattern name: %v", err)
		}
	}

	shape, ok := store.Lookup(choice)
	if !ok {
		log.Fatalf("pattern %q not found", choice)
	}

	viewer, err := pkg.NewViewer(shape)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(pkg.ScreenWidth, pkg.ScreenHeight)
	ebiten.SetWindowTitle("Pattern Render - " + shape.Name)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, pkg.ErrQuit) {
		log.Fatal(err)
	}
}
