package levels

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestNew(t *testing.T) {
	model := New(Colors{Primary: "#ff0000"}, "JPY")

	columns := model.levels.Columns()
	be.Equal(t, 6, len(columns))
	be.Equal(t, "Tier", columns[0].Title)
	be.Equal(t, "Name", columns[1].Title)
	be.Equal(t, "Value", columns[2].Title)
	be.Equal(t, 5, len(model.levels.Rows()))
}

func TestDescribe(t *testing.T) {
	rows := Describe("JPY")
	be.Equal(t, 5, len(rows))

	be.Equal(t, Row{
		Tier:  1,
		Name:  "A Little Happy",
		Value: "¥5",
		Size:  30,
		Light: rows[0].Light,
		Dark:  rows[0].Dark,
	}, rows[0])
	be.Equal(t, "Best Day Ever", rows[4].Name)
	be.Equal(t, "¥500", rows[4].Value)
	be.Equal(t, 70, rows[4].Size)
	be.True(t, rows[0].Light != rows[0].Dark)
}

func TestSetCurrency(t *testing.T) {
	model := New(Colors{Primary: "#ff0000"}, "JPY")
	model.SetCurrency("USD")

	rows := model.levels.Rows()
	be.Equal(t, "$5.00", rows[0][2])
	be.Equal(t, "$500.00", rows[4][2])
}

func TestSetFocusAndSize(t *testing.T) {
	model := New(Colors{Primary: "#ff0000"}, "JPY")
	model.SetFocus(true)
	model.SetSize(80, 10)
	be.True(t, model.levels.Focused())
	model.SetFocus(false)
	be.False(t, model.levels.Focused())
}
