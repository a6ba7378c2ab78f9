package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestOutcome_Err(t *testing.T) {
	tests := []struct {
		kind domain.OutcomeKind
		want error
	}{
		{domain.OutcomeInserted, nil},
		{domain.OutcomeSlotOccupied, domain.ErrSlotOccupied},
		{domain.OutcomeInvalidSide, domain.ErrInvalidSide},
		{domain.OutcomeManagerNotFound, domain.ErrManagerNotFound},
		{domain.OutcomeEmptyTree, domain.ErrEmptyTree},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			out := domain.Outcome{Kind: tt.kind, Manager: "A", Employee: "B", Side: domain.SideLeft}
			err := out.Err()
			if tt.want == nil {
				assert.NoError(t, err)
				assert.True(t, out.Inserted())
				return
			}
			assert.True(t, errors.Is(err, tt.want))
			assert.False(t, out.Inserted())
		})
	}
}

func TestInsertError_Message(t *testing.T) {
	err := domain.Outcome{Kind: domain.OutcomeSlotOccupied, Manager: "A", Employee: "C", Side: domain.SideLeft}.Err()
	assert.Equal(t, `insert "C": "A" already has a left report`, err.Error())

	err = domain.Outcome{Kind: domain.OutcomeManagerNotFound, Manager: "Z", Employee: "D", Side: domain.SideLeft}.Err()
	assert.Equal(t, `insert "D": manager "Z" not found`, err.Error())
}

func TestParseSide(t *testing.T) {
	assert.Equal(t, domain.SideLeft, domain.ParseSide("left"))
	assert.Equal(t, domain.SideLeft, domain.ParseSide(" LEFT "))
	assert.Equal(t, domain.SideRight, domain.ParseSide("Right"))

	up := domain.ParseSide("up")
	assert.False(t, up.Valid())
	assert.Equal(t, "up", string(up))
	assert.Equal(t, "LEFT", domain.SideLeft.Label())
}

func TestNode_Clone(t *testing.T) {
	root := domain.NewNode("A")
	root.Left = domain.NewNode("B")

	cp := root.Clone()
	cp.Left.Name = "changed"
	assert.Equal(t, "B", root.Left.Name)

	var nilNode *domain.Node
	assert.Nil(t, nilNode.Clone())
}
