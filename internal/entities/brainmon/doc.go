// Package brainmon holds the BrainMon domain model: owned monsters, the
// ephemeral wild encounter and trivia question, and the static biome and
// Pokedex tables.
//
// Everything here is pure. The tables are package-level data exposed only
// through accessors that return copies, so no caller can mutate them.
package brainmon
