// fentool validates and normalises chess position and move strings.
//
// It parses a FEN position, echoes its canonical form, and optionally
// checks coordinate moves against it, reporting each move's canonical
// string and inferred classification.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"chesscore/internal/chess"
	"chesscore/internal/fen"
)

const programVersion = "0.1.0"

var (
	fenArg    = flag.String("fen", fen.Initial, "position to load, in FEN")
	movesArg  = flag.String("moves", "", "comma-separated coordinate moves to check against the position")
	showBoard = flag.Bool("board", false, "print an ASCII rendering of the position")
	version   = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("fentool version %s\n", programVersion)
		os.Exit(0)
	}

	board := chess.NewBoard()
	if err := fen.Parse(board, *fenArg); err != nil {
		fmt.Fprintf(os.Stderr, "fentool: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(fen.Write(board))
	if *showBoard {
		fmt.Println(board)
	}

	if *movesArg == "" {
		return
	}
	for _, text := range strings.Split(*movesArg, ",") {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		move, err := chess.ParseMove(text, board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fentool: %v\n", err)
			os.Exit(1)
		}
		canonical, err := chess.MoveString(move)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fentool: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s\t%s\n", canonical, describe(move))
	}
}

// describe summarises a move's inferred classification.
func describe(m chess.Move) string {
	var kinds []string
	switch m.Special() {
	case chess.SpecialEnPassant:
		kinds = append(kinds, "en passant")
	case chess.SpecialCastleKingside:
		kinds = append(kinds, "kingside castle")
	case chess.SpecialCastleQueenside:
		kinds = append(kinds, "queenside castle")
	}
	if m.IsCapture() {
		kinds = append(kinds, fmt.Sprintf("captures %v", m.Captured()))
	}
	if m.IsPromotion() {
		kinds = append(kinds, fmt.Sprintf("promotes to %v", m.Promotion()))
	}
	if len(kinds) == 0 {
		return "quiet"
	}
	return strings.Join(kinds, ", ")
}
