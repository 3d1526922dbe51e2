package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/phantomop26/Poker-Analyst/analysis"
)

type ProfilesCmd struct {
	Profiles string `type:"existingfile" help:"HCL file with behavior profile overrides"`
}

func (c *ProfilesCmd) Run() error {
	set := analysis.DefaultProfiles()
	if c.Profiles != "" {
		var err error
		set, err = analysis.LoadProfiles(c.Profiles)
		if err != nil {
			return fmt.Errorf("loading profiles: %w", err)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("name"),
		headerStyle.Render("vpip"),
		headerStyle.Render("pfr"),
		headerStyle.Render("aggression"),
		headerStyle.Render("bluff"),
		headerStyle.Render("range mult"))
	for _, name := range set.Names() {
		p, _ := set.Lookup(name)
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.1f\t%.2f\t%.2f\n",
			labelStyle.Render(p.Name), p.VPIP, p.PFR, p.Aggression, p.BluffFreq, p.HandRangeMultiplier)
	}
	return w.Flush()
}
