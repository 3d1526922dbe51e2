package main

import (
	"fmt"

	"github.com/phantomop26/Poker-Analyst/poker"
)

type PreflopCmd struct {
	Hand string `arg:"" help:"Two hole cards, e.g. 'AsKd'"`
}

func (c *PreflopCmd) Run() error {
	cards, err := poker.ParseCards(c.Hand)
	if err != nil {
		return err
	}
	if len(cards) != 2 {
		return fmt.Errorf("need exactly 2 cards, got %d", len(cards))
	}
	if err := validateDistinct(cards); err != nil {
		return err
	}

	score := poker.PreflopScore(cards[0], cards[1])
	fmt.Printf("%s  %s\n", headerStyle.Render("hand"), handStyle.Render(poker.HandKey(cards[0], cards[1])))
	fmt.Printf("%s  %d\n", headerStyle.Render("score"), score)
	fmt.Printf("%s  %s\n", headerStyle.Render("rating"), valueStyle.Render(poker.PreflopLabel(score)))
	return nil
}
