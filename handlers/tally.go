// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"

	"github.com/heavensgate/galavote/models"
)

// loadVotes reads every persisted choice plus the record count. The
// record count is the submission total: a record voting in three
// categories still counts once.
func loadVotes(db *sql.DB) ([]models.VoteChoice, int, error) {
	rows, err := db.Query(`SELECT category_id, nominee FROM vote_choice`)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query vote choices: %w", err)
	}
	defer rows.Close()

	var choices []models.VoteChoice
	for rows.Next() {
		var c models.VoteChoice
		if err := rows.Scan(&c.Category, &c.Nominee); err != nil {
			return nil, 0, fmt.Errorf("failed to scan vote choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM vote_record`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count vote records: %w", err)
	}

	return choices, total, nil
}

// ComputeTally folds choices into per-category nominee counts and picks
// each category's leader. Every configured category appears in the
// output even with zero votes; categories or nominees present only in
// historical data are tallied as-is rather than dropped.
func ComputeTally(choices []models.VoteChoice, categories []models.Category) (map[string]map[string]int, map[string]models.Leader) {
	counts := make(map[string]map[string]int, len(categories))
	for _, c := range categories {
		counts[c.ID] = map[string]int{}
	}

	for _, ch := range choices {
		byNominee := counts[ch.Category]
		if byNominee == nil {
			byNominee = map[string]int{}
			counts[ch.Category] = byNominee
		}
		byNominee[ch.Nominee]++
	}

	leaders := make(map[string]models.Leader, len(counts))
	for category, byNominee := range counts {
		leaders[category] = leaderOf(byNominee)
	}

	return counts, leaders
}

// leaderOf picks the nominee with the highest count. Ties go to the
// lexicographically smallest name so repeated queries agree; a category
// with no votes gets the empty nominee with count 0.
func leaderOf(byNominee map[string]int) models.Leader {
	var best models.Leader
	for nominee, n := range byNominee {
		if n > best.Votes || (n == best.Votes && best.Votes > 0 && nominee < best.Nominee) {
			best = models.Leader{Nominee: nominee, Votes: n}
		}
	}
	return best
}
