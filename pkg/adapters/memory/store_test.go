package memory_test

import (
	"testing"

	"github.com/aretw0/teamtree/pkg/adapters/memory"
	"github.com/aretw0/teamtree/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunChartStoreContract(t, store)
}
