package main

import (
	"fmt"

	"github.com/phantomop26/Poker-Analyst/poker"
)

type EvalCmd struct {
	Cards string `arg:"" help:"Five to seven cards, e.g. 'AsKsQsJsTs'"`
}

func (c *EvalCmd) Run() error {
	cards, err := poker.ParseCards(c.Cards)
	if err != nil {
		return err
	}
	if len(cards) < 5 || len(cards) > 7 {
		return fmt.Errorf("need 5 to 7 cards, got %d", len(cards))
	}
	if err := validateDistinct(cards); err != nil {
		return err
	}

	hand := poker.Evaluate(cards)
	fmt.Printf("%s  %s\n", headerStyle.Render("cards"), handStyle.Render(formatCards(cards)))
	fmt.Printf("%s  %s\n", headerStyle.Render("hand"), valueStyle.Render(hand.String()))
	fmt.Printf("%s  %.3f\n", headerStyle.Render("strength"), poker.HandStrength(hand, len(cards)))
	return nil
}
