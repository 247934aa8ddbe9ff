package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRole(t *testing.T) {
	assert.Equal(t, RolePrimary, detectRole("Details"))
	assert.Equal(t, RolePrimary, detectRole("message"))
	assert.Equal(t, RoleSecondary, detectRole(" Time "))
	assert.Equal(t, RoleSecondary, detectRole("id"))
	assert.Equal(t, RoleNormal, detectRole("host"))
}

func TestNewColumns(t *testing.T) {
	cols := newColumns([]string{"time", "host", "details"})
	require.Len(t, cols, 3)

	assert.Equal(t, 1, cols[1].Index)
	assert.True(t, cols[1].Visible)
	assert.Greater(t, cols[2].Weight, cols[0].Weight, "primary column outweighs secondary")
	assert.Greater(t, cols[2].MinWidth, cols[1].MinWidth)
}

func TestMarkEmptyColumns(t *testing.T) {
	cols := newColumns([]string{"time", "host", "details"})
	rows := []gridRow{
		newGridRow([]string{"10:00", "", "boot"}, 1),
		newGridRow([]string{"10:01", "  ", "shutdown"}, 2),
	}

	markEmptyColumns(cols, rows)

	assert.True(t, cols[0].Visible)
	assert.False(t, cols[1].Visible, "host never has data")
	assert.True(t, cols[2].Visible)
}

func TestMarkEmptyColumnsKeepsPrimary(t *testing.T) {
	cols := newColumns([]string{"time", "details"})
	rows := []gridRow{
		newGridRow([]string{"10:00", ""}, 1),
	}

	markEmptyColumns(cols, rows)

	assert.True(t, cols[1].Visible, "primary column stays even when empty")
}

func TestLayoutColumnsDistributesByWeight(t *testing.T) {
	cols := newColumns([]string{"time", "host", "details"})
	cols = layoutColumns(cols, 120)

	total := 0
	for _, c := range cols {
		total += c.Width
		assert.GreaterOrEqual(t, c.Width, c.MinWidth)
	}
	assert.LessOrEqual(t, total, 120)
	assert.Greater(t, cols[2].Width, cols[0].Width, "heavier column gets the extra space")
}

func TestLayoutColumnsTightWidth(t *testing.T) {
	cols := newColumns([]string{"time", "host", "details"})
	cols = layoutColumns(cols, 20)

	for _, c := range cols {
		if !c.Visible {
			continue
		}
		assert.LessOrEqual(t, c.Width, 20)
	}
}

func TestLayoutColumnsSkipsHidden(t *testing.T) {
	cols := newColumns([]string{"time", "host"})
	cols[1].Visible = false
	cols = layoutColumns(cols, 80)

	assert.Zero(t, cols[1].Width)
	assert.Greater(t, cols[0].Width, 0)
}

func TestGridRowID(t *testing.T) {
	a := newGridRow([]string{"Alpha", "one"}, 1)
	b := newGridRow([]string{" alpha ", "ONE"}, 2)
	c := newGridRow([]string{"one", "Alpha"}, 3)

	assert.Equal(t, a.id, b.id, "case and padding do not change identity")
	assert.NotEqual(t, a.id, c.id, "column order does")
}

func TestGridRowJoin(t *testing.T) {
	r := newGridRow([]string{"a", "b", "c"}, 1)
	assert.Equal(t, "a,b,c", r.Join(","))
	assert.Equal(t, "a\tb\tc", r.String())
}
