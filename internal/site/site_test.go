package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumniportal/internal/model"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, role := range []model.Role{model.RoleAdmin, model.RoleAlumni, model.RoleFaculty} {
		items := c.Menu(role)
		require.NotEmpty(t, items, role)
		for _, it := range items {
			assert.True(t, strings.HasPrefix(it.Path, "/"+role.Slug()+"/"), "%s links outside its dashboard: %s", role, it.Path)
		}
		assert.Equal(t, "/"+role.Slug()+"/dashboard", items[0].Path)
	}

	assert.Empty(t, c.Menu(model.Role("GUEST")))
	assert.NotEmpty(t, c.About().Title)
	assert.NotEmpty(t, c.About().Sections)
}
