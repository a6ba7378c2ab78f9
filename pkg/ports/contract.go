package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunChartStoreContract runs a suite of tests to verify that a ChartStore implementation
// adheres to the defined interface contract.
func RunChartStoreContract(t *testing.T, store ChartStore) {
	ctx := context.Background()
	chartID := "contract-test-chart-" + time.Now().Format("20060102150405")

	sample := func(id string) *domain.Chart {
		root := domain.NewNode("A")
		root.Left = domain.NewNode("B")
		root.Right = domain.NewNode("C")
		root.Left.Left = domain.NewNode("D")
		return &domain.Chart{ID: id, Root: root}
	}

	t.Run("Save and Load", func(t *testing.T) {
		chart := sample(chartID)

		err := store.Save(ctx, chart)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, chartID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, chartID, loaded.ID)
		assert.Equal(t, chart.Root, loaded.Root)
	})

	t.Run("Loaded Copy Is Isolated", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sample(chartID)))

		loaded, err := store.Load(ctx, chartID)
		require.NoError(t, err)
		loaded.Root.Right.Left = domain.NewNode("Intruder")

		again, err := store.Load(ctx, chartID)
		require.NoError(t, err)
		assert.Nil(t, again.Root.Right.Left)
	})

	t.Run("Save Empty Chart", func(t *testing.T) {
		id := chartID + "-empty"
		require.NoError(t, store.Save(ctx, &domain.Chart{ID: id}))
		defer func() { _ = store.Delete(ctx, id) }()

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, loaded.Root)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+chartID)
		assert.ErrorIs(t, err, domain.ErrChartNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sample(chartID))
		require.NoError(t, err)

		err = store.Delete(ctx, chartID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, chartID)
		assert.ErrorIs(t, err, domain.ErrChartNotFound, "Load after Delete should return ErrChartNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := chartID + "-1"
		id2 := chartID + "-2"
		_ = store.Save(ctx, sample(id1))
		_ = store.Save(ctx, sample(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		charts, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, charts, id1)
		assert.Contains(t, charts, id2)
	})
}
