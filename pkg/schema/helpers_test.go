package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forma/pkg/rules"
	"github.com/dmitrymomot/forma/pkg/schema"
)

func newRuntime(t *testing.T, opts ...schema.RuntimeOption) *schema.Runtime {
	t.Helper()
	engine, err := rules.New()
	require.NoError(t, err)
	return schema.NewRuntime(engine, opts...)
}

func rulesOf(tree *schema.ErrorTree) []string {
	if tree == nil {
		return nil
	}
	out := make([]string, 0, len(tree.Issues))
	for _, issue := range tree.Issues {
		out = append(out, issue.Rule)
	}
	return out
}
