package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sgal-lab/sgal-api/internal/application/dto"
)

func TestPageRequest_Defaults(t *testing.T) {
	var p dto.PageRequest
	p.Defaults()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Offset())

	p = dto.PageRequest{Page: 3, Limit: 500}
	p.Defaults()
	assert.Equal(t, 100, p.Limit, "limit debe estar acotado a 100")
	assert.Equal(t, 200, p.Offset())
}

// Página 2 con límite 10 sobre 15 registros: quedan 5, sin siguiente, con anterior.
func TestNewPagination_UltimaPaginaParcial(t *testing.T) {
	pg := dto.NewPagination(2, 10, 15)

	assert.Equal(t, 2, pg.CurrentPage)
	assert.Equal(t, 2, pg.TotalPages)
	assert.Equal(t, 15, pg.TotalCount)
	assert.False(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
}

func TestNewPagination_PrimeraPagina(t *testing.T) {
	pg := dto.NewPagination(1, 10, 15)

	assert.True(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
	assert.Equal(t, 2, pg.TotalPages)
}

func TestNewPagination_SinRegistros(t *testing.T) {
	pg := dto.NewPagination(1, 10, 0)

	assert.Equal(t, 0, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}
