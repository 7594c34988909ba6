package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/costars/internal/domain"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		res  domain.PathResult
		want string
	}{
		{
			name: "single hop",
			res:  domain.Found("Tom Hanks", "Robin Wright", []domain.Hop{{Movie: "Forrest Gump", Actor: "Robin Wright"}}),
			want: "Found a path!\nTom Hanks was in...\nForrest Gump with Robin Wright\n",
		},
		{
			name: "two hops",
			res: domain.Found("Robin Wright", "Kevin Bacon", []domain.Hop{
				{Movie: "Forrest Gump", Actor: "Tom Hanks"},
				{Movie: "Apollo 13", Actor: "Kevin Bacon"},
			}),
			want: "Found a path!\nRobin Wright was in...\nForrest Gump with Tom Hanks who was in...\nApollo 13 with Kevin Bacon\n",
		},
		{
			name: "same actor",
			res:  domain.Found("Tom Hanks", "Tom Hanks", nil),
			want: "Found a path!\nTom Hanks is Tom Hanks.\n",
		},
		{
			name: "from missing",
			res:  domain.NotFound("Nobody", "Tom Hanks", domain.MissingFrom),
			want: "Nobody not found!\n",
		},
		{
			name: "to missing",
			res:  domain.NotFound("Tom Hanks", "Greta Garbo", domain.MissingTo),
			want: "Greta Garbo not found!\n",
		},
		{
			name: "both missing",
			res:  domain.NotFound("Nobody", "No One", domain.MissingBoth),
			want: "Nobody and No One not found!\n",
		},
		{
			name: "no connection",
			res:  domain.NoConnection("Tom Hanks", "Matt Damon"),
			want: "No connection between Tom Hanks and Matt Damon.\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.res))
		})
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, domain.NoConnection("A", "B")))
	assert.Equal(t, "No connection between A and B.\n", buf.String())
}

func TestView_JSON(t *testing.T) {
	raw, err := json.Marshal(View(domain.NoConnection("A", "B")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"A","to":"B","status":"no_connection","degrees":-1,"hops":[]}`, string(raw))

	raw, err = json.Marshal(View(domain.NotFound("A", "B", domain.MissingBoth)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"A","to":"B","status":"not_found","degrees":-1,"hops":[],"missing":["A","B"]}`, string(raw))

	view := View(domain.Found("A", "B", []domain.Hop{{Movie: "M", Actor: "B"}}))
	assert.Equal(t, 1, view.Degrees)
	assert.Equal(t, []HopView{{Movie: "M", Actor: "B"}}, view.Hops)
}
