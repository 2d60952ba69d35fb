package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitSubject(t *testing.T) {
	assert.Equal(t, "first line", (&Commit{Message: "first line\nsecond line"}).Subject())
	assert.Equal(t, "only line", (&Commit{Message: "only line"}).Subject())
	assert.Equal(t, "", (&Commit{Message: "\nbody"}).Subject())
}

func TestTemplateEntryInert(t *testing.T) {
	assert.True(t, (&TemplateEntry{}).Inert())
	assert.False(t, (&TemplateEntry{Key: "Bug"}).Inert())
	assert.False(t, (&TemplateEntry{Value: "[0-9]+"}).Inert())
}

func TestTemplateEntryDisplayName(t *testing.T) {
	kv := &TemplateEntry{Kind: KindKeyValue, Key: "Bug", Name: "bug-entry"}
	assert.Equal(t, "Bug", kv.DisplayName())

	pattern := &TemplateEntry{Kind: KindSubjectPattern, Name: "release-tag"}
	assert.Equal(t, "release-tag", pattern.DisplayName())
}

func TestProjectRulesMatchesBranch(t *testing.T) {
	catchAll := &ProjectRules{Branch: ""}
	assert.True(t, catchAll.MatchesBranch("main"))
	assert.True(t, catchAll.MatchesBranch("refs/heads/anything"))

	main := &ProjectRules{Branch: "main"}
	assert.True(t, main.MatchesBranch("main"))
	assert.True(t, main.MatchesBranch("refs/heads/main"))
	assert.False(t, main.MatchesBranch("develop"))

	prefixed := &ProjectRules{Branch: "refs/heads/main"}
	assert.True(t, prefixed.MatchesBranch("main"))
	assert.True(t, prefixed.MatchesBranch("refs/heads/main"))
}
