package ecs_test

import (
	"fmt"

	"github.com/plus3/pong/ecs"
)

type MatchRules struct {
	VictoryScore int
	Title        string
}

type Tally struct {
	Left, Right int
}

// ExampleNewSingleton stores match-wide settings that belong to no entity.
func ExampleNewSingleton() {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	rules := ecs.NewSingleton(storage, MatchRules{VictoryScore: 5, Title: "PONG"})
	fmt.Printf("%s to %d\n", rules.Get().Title, rules.Get().VictoryScore)

	rules.Get().VictoryScore = 3

	// The initializer is ignored once the singleton exists.
	again := ecs.NewSingleton(storage, MatchRules{VictoryScore: 11})
	fmt.Printf("%s to %d\n", again.Get().Title, again.Get().VictoryScore)

	// Output:
	// PONG to 5
	// PONG to 3
}

// ExampleSingleton_multipleReferences shows two accessors sharing one value.
func ExampleSingleton_multipleReferences() {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	scoring := ecs.NewSingleton[Tally](storage)
	display := ecs.NewSingleton[Tally](storage)

	scoring.Get().Left++
	scoring.Get().Right += 2
	fmt.Printf("%d - %d\n", display.Get().Left, display.Get().Right)

	*display.Get() = Tally{}
	fmt.Printf("%d - %d\n", scoring.Get().Left, scoring.Get().Right)

	// Output:
	// 1 - 2
	// 0 - 0
}

// ExampleStorage_ReadSingleton reads singletons outside of a system.
func ExampleStorage_ReadSingleton() {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	ecs.NewSingleton(storage, MatchRules{VictoryScore: 5, Title: "PONG"})

	var rules *MatchRules
	if storage.ReadSingleton(&rules) {
		fmt.Printf("first to %d wins\n", rules.VictoryScore)
	}

	var tally *Tally
	if !storage.ReadSingleton(&tally) {
		fmt.Println("no tally yet")
	}

	// Output:
	// first to 5 wins
	// no tally yet
}
