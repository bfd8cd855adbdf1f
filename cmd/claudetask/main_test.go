package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectSkillLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"claudetask"},
			want: []string{"claudetask"},
		},
		{
			name: "direct skill id first token",
			in:   []string{"claudetask", "skill-abc123"},
			want: []string{"claudetask", "skills", "show", "skill-abc123"},
		},
		{
			name: "direct skill id after value flag",
			in:   []string{"claudetask", "--project", "p1", "skill-abc123"},
			want: []string{"claudetask", "--project", "p1", "skills", "show", "skill-abc123"},
		},
		{
			name: "direct skill id after equals flag",
			in:   []string{"claudetask", "--project=p1", "skill-abc123"},
			want: []string{"claudetask", "--project=p1", "skills", "show", "skill-abc123"},
		},
		{
			name: "direct skill id after bool flag",
			in:   []string{"claudetask", "--pretty", "skill-abc123"},
			want: []string{"claudetask", "--pretty", "skills", "show", "skill-abc123"},
		},
		{
			name: "direct skill id after double dash",
			in:   []string{"claudetask", "--project", "p1", "--", "skill-abc123"},
			want: []string{"claudetask", "--project", "p1", "--", "skills", "show", "skill-abc123"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"claudetask", "skills", "show", "skill-abc123"},
			want: []string{"claudetask", "skills", "show", "skill-abc123"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"claudetask", "wat"},
			want: []string{"claudetask", "wat"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectSkillLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectSkillLookupArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
