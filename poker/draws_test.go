package poker

import "testing"

func TestAnalyzeDraws(t *testing.T) {
	tests := []struct {
		name  string
		hole  string
		board string
		want  DrawAnalysis
	}{
		{
			name:  "flush draw on flop",
			hole:  "AsKs",
			board: "Qs7s2d",
			want: DrawAnalysis{
				FlushDraw:        true,
				BackdoorStraight: true, // A-K-Q toward broadway
				Overcards:        2,
				Outs:             15,
			},
		},
		{
			name:  "open ended straight draw",
			hole:  "JhTc",
			board: "9s8d2c",
			want: DrawAnalysis{
				OpenEndedStraightDraw: true,
				Overcards:             2,
				Outs:                  14,
			},
		},
		{
			name:  "gutshot",
			hole:  "JhTc",
			board: "9s7d2c",
			want: DrawAnalysis{
				GutshotStraightDraw: true,
				Overcards:           2,
				Outs:                10,
			},
		},
		{
			name:  "backdoor flush only on flop",
			hole:  "As3s",
			board: "Ks8h4d",
			want: DrawAnalysis{
				BackdoorFlush:    true,
				BackdoorStraight: true, // A-3-4 toward the wheel
				Overcards:        1,
				Outs:             3,
			},
		},
		{
			name:  "overcards only",
			hole:  "AhKc",
			board: "9s8d2c",
			want: DrawAnalysis{
				Overcards: 2,
				Outs:      6,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeDraws(MustParseCards(tt.hole), MustParseCards(tt.board))
			if got != tt.want {
				t.Errorf("AnalyzeDraws = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeDrawsMadeStraightSuppressed(t *testing.T) {
	got := AnalyzeDraws(MustParseCards("JhTc"), MustParseCards("9s8d7c"))
	if got.HasStraightDraw() {
		t.Error("made straight should not report a draw")
	}
}

func TestAnalyzeDrawsCompleteBoard(t *testing.T) {
	got := AnalyzeDraws(MustParseCards("AsKs"), MustParseCards("Qs7s2d3c4h"))
	if got != (DrawAnalysis{}) {
		t.Errorf("complete board should yield zero analysis, got %+v", got)
	}
}

func TestAnalyzeDrawsNoBackdoorOnTurn(t *testing.T) {
	got := AnalyzeDraws(MustParseCards("As3s"), MustParseCards("Ks8h4d2c"))
	if got.BackdoorFlush || got.BackdoorStraight {
		t.Error("backdoor draws only exist on the flop")
	}
}
