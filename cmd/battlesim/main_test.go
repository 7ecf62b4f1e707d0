package main

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SeededBattleIsReproducible(t *testing.T) {
	opts := options{dataDir: "../../data", speciesA: "charizard", speciesB: "blastoise", level: 50, seed: 7, turns: 30}

	var first, second bytes.Buffer
	require.NoError(t, run(context.Background(), opts, &first))
	require.NoError(t, run(context.Background(), opts, &second))

	assert.Equal(t, first.String(), second.String())
	assert.True(t, strings.HasPrefix(first.String(), "Seed 7: Charizard (Lv50"))
	assert.Contains(t, first.String(), "Turn 1: ")
}

func TestRun_PrintsEveryTurn(t *testing.T) {
	opts := options{dataDir: "../../data", speciesA: "snorlax", speciesB: "snorlax", level: 100, seed: 11, turns: 60}

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), opts, &out))

	last := 0
	for _, m := range regexp.MustCompile(`(?m)^Turn (\d+): `).FindAllStringSubmatch(out.String(), -1) {
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		last = max(last, n)
	}
	require.Positive(t, last)

	for turn := 1; turn <= last; turn++ {
		assert.Contains(t, out.String(), fmt.Sprintf("Turn %d: ", turn))
	}
}

func TestRun_TurnLimit(t *testing.T) {
	opts := options{dataDir: "../../data", speciesA: "snorlax", speciesB: "snorlax", level: 100, seed: 3, turns: 1}

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), opts, &out))

	assert.NotContains(t, out.String(), "Turn 2: ")
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer

	assert.Error(t, run(ctx, options{dataDir: "../../data", speciesA: "charizard", speciesB: "blastoise", level: 50, turns: 0}, &out))
	assert.Error(t, run(ctx, options{dataDir: "does-not-exist", speciesA: "charizard", speciesB: "blastoise", level: 50, turns: 5}, &out))
	assert.Error(t, run(ctx, options{dataDir: "../../data", speciesA: "missingno", speciesB: "blastoise", level: 50, turns: 5}, &out))
}
