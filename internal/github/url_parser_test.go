package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    *RepositoryInfo
		wantErr bool
	}{
		{
			name: "ssh with .git",
			url:  "git@github.com:naag/gh-kanban.git",
			want: &RepositoryInfo{Owner: "naag", Name: "gh-kanban"},
		},
		{
			name: "ssh without .git",
			url:  "git@github.com:naag/gh-kanban",
			want: &RepositoryInfo{Owner: "naag", Name: "gh-kanban"},
		},
		{
			name: "https with .git",
			url:  "https://github.com/naag/gh-kanban.git",
			want: &RepositoryInfo{Owner: "naag", Name: "gh-kanban"},
		},
		{
			name: "https without .git",
			url:  "https://github.com/naag/gh-kanban",
			want: &RepositoryInfo{Owner: "naag", Name: "gh-kanban"},
		},
		{
			name: "ssh url form",
			url:  "ssh://git@github.com/naag/gh-kanban.git",
			want: &RepositoryInfo{Owner: "naag", Name: "gh-kanban"},
		},
		{
			name: "dots inside the name are kept",
			url:  "https://github.com/naag/dotfiles.nvim.git",
			want: &RepositoryInfo{Owner: "naag", Name: "dotfiles.nvim"},
		},
		{
			name:    "no separator",
			url:     "gh-kanban",
			wantErr: true,
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRemoteURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
