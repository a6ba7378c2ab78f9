package cli_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"github.com/aretw0/teamtree"
	"github.com/aretw0/teamtree/internal/cli"
	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/aretw0/teamtree/pkg/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *teamtree.Service {
	t.Helper()
	svc, err := teamtree.Open(teamtree.WithStore(teamtree.StoreFile), teamtree.WithDir(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestInitAddShow(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	var buf bytes.Buffer

	err := cli.Add(ctx, svc, &buf, "eng", "A", "B", "left")
	assert.ErrorIs(t, err, domain.ErrEmptyTree)
	assert.Equal(t, "⚠️ No team lead found. Add a root first.\n", buf.String())

	buf.Reset()
	require.NoError(t, cli.Init(ctx, svc, &buf, "eng", "A"))
	assert.Contains(t, buf.String(), "A is the team lead")

	err = cli.Init(ctx, svc, &buf, "eng", "B")
	assert.Error(t, err)

	buf.Reset()
	require.NoError(t, cli.Add(ctx, svc, &buf, "eng", "A", "B", "left"))
	require.NoError(t, cli.Add(ctx, svc, &buf, "eng", "B", "D", "left"))
	require.NoError(t, cli.Add(ctx, svc, &buf, "eng", "A", "C", "Right"))
	err = cli.Add(ctx, svc, &buf, "eng", "A", "X", "left")
	assert.ErrorIs(t, err, domain.ErrSlotOccupied)
	assert.Contains(t, buf.String(), "⚠️ A already has a LEFT report.")

	buf.Reset()
	require.NoError(t, cli.Show(ctx, svc, &buf, "eng", cli.ShowOptions{}))
	assert.Equal(t, "- A\n   - B\n      - D\n   - C\n", buf.String())
}

func TestShow_MissingChart(t *testing.T) {
	svc := newService(t)
	var buf bytes.Buffer
	require.NoError(t, cli.Show(context.Background(), svc, &buf, "ghost", cli.ShowOptions{}))
	assert.Equal(t, "⚠️ No team structure to display.\n", buf.String())
}

func TestShow_Pretty(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	var buf bytes.Buffer
	require.NoError(t, cli.Init(ctx, svc, &buf, "eng", "Alice"))

	buf.Reset()
	require.NoError(t, cli.Show(ctx, svc, &buf, "eng", cli.ShowOptions{Pretty: true, Title: "eng"}))
	assert.Contains(t, buf.String(), "Alice")
}

func TestGraphAndList(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	var buf bytes.Buffer
	require.NoError(t, cli.Init(ctx, svc, &buf, "eng", "A"))
	require.NoError(t, cli.Add(ctx, svc, &buf, "eng", "A", "B", "right"))

	buf.Reset()
	require.NoError(t, cli.Graph(ctx, svc, &buf, "eng", nil))
	assert.Contains(t, buf.String(), "n0 -- right --> n1")

	buf.Reset()
	require.NoError(t, cli.List(ctx, svc, &buf))
	assert.Equal(t, "eng\n", buf.String())
}

func TestRunPlan_Ephemeral(t *testing.T) {
	svc := newService(t)
	var buf bytes.Buffer

	require.NoError(t, cli.RunPlan(context.Background(), svc, &buf, "", plan.Demo(), cli.ShowOptions{}))
	out := buf.String()
	assert.Contains(t, out, "✅ Bob added to LEFT of Alice.")
	assert.Contains(t, out, "❌ Manager 'Zara' not found in the team.")
	assert.Contains(t, out, "❌ Side must be 'left' or 'right'.")
	assert.Contains(t, out, "- Alice\n   - Bob\n      - Diana\n      - Evan\n   - Charlie\n      - Fiona\n")

	// Nothing persisted
	ids, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRunPlan_Persisted(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	var buf bytes.Buffer

	require.NoError(t, cli.RunPlan(ctx, svc, &buf, "demo", plan.Demo(), cli.ShowOptions{}))

	// Replaying keeps the root and reports every slot as taken
	buf.Reset()
	require.NoError(t, cli.RunPlan(ctx, svc, &buf, "demo", plan.Demo(), cli.ShowOptions{}))
	assert.Contains(t, buf.String(), "⚠️ Alice already has a LEFT report.")

	tree, err := svc.Get(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, 6, tree.Len())
}

func TestRunPlan_PersistedRootMismatch(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	var buf bytes.Buffer

	require.NoError(t, cli.Init(ctx, svc, &buf, "demo", "Zed"))
	buf.Reset()

	err := cli.RunPlan(ctx, svc, &buf, "demo", plan.Demo(), cli.ShowOptions{})
	require.ErrorIs(t, err, domain.ErrRootExists)
	assert.ErrorContains(t, err, `plan root "Alice" does not match chart root "Zed"`)
	assert.Empty(t, buf.String(), "no step runs against a foreign chart")

	tree, err := svc.Get(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Len())
}

func TestOpenService(t *testing.T) {
	svc, logger, err := cli.OpenService(cli.Options{Store: "memory", LogLevel: "warn", Metrics: true})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NotNil(t, svc.Metrics())

	_, _, err = cli.OpenService(cli.Options{Store: "memory", LogLevel: "chatty"})
	assert.Error(t, err)
}

func TestOpenService_EncryptionKey(t *testing.T) {
	key := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	svc, _, err := cli.OpenService(cli.Options{Store: "memory", EncryptionKey: key})
	require.NoError(t, err)
	defer svc.Close()

	ctx := context.Background()
	_, err = svc.Create(ctx, "eng", "Alice")
	require.NoError(t, err)

	chart, err := svc.Store().Load(ctx, "eng")
	require.NoError(t, err)
	assert.Equal(t, "Alice", chart.Root.Name)

	_, _, err = cli.OpenService(cli.Options{Store: "memory", EncryptionKey: "not base64!"})
	assert.ErrorContains(t, err, "invalid encryption key")

	short := base64.StdEncoding.EncodeToString([]byte("short"))
	_, _, err = cli.OpenService(cli.Options{Store: "memory", EncryptionKey: short})
	assert.Error(t, err)
}

func TestEnvOr(t *testing.T) {
	t.Setenv("TEAMTREE_TEST_STORE", "redis")
	assert.Equal(t, "redis", cli.EnvOr("TEAMTREE_TEST_STORE", "file"))
	assert.Equal(t, "file", cli.EnvOr("TEAMTREE_TEST_UNSET", "file"))

	t.Setenv("TEAMTREE_TEST_DB", "3")
	assert.Equal(t, 3, cli.EnvIntOr("TEAMTREE_TEST_DB", 0))
	t.Setenv("TEAMTREE_TEST_DB", "x")
	assert.Equal(t, 0, cli.EnvIntOr("TEAMTREE_TEST_DB", 0))
}
