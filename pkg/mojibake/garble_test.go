package mojibake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiangYd616/Web-Test/pkg/patch"
)

func TestGarble(t *testing.T) {
	tests := []struct {
		name    string
		correct string
		want    string
	}{
		{
			name:    "clean_pair_run",
			correct: "通知",
			want:    "閫氱煡",
		},
		{
			name:    "cancel_label",
			correct: "取消",
			want:    "鍙栨秷",
		},
		{
			name:    "config_label",
			correct: "配置",
			want:    "閰嶇疆",
		},
		{
			name:    "test_label",
			correct: "测试",
			want:    "娴嬭瘯",
		},
		{
			name:    "dangling_lead_becomes_question_mark",
			correct: "排队中",
			want:    "鎺掗槦涓?",
		},
		{
			name:    "running_badge",
			correct: "运行中",
			want:    "杩愯涓?",
		},
		{
			name:    "malformed_pair_eats_following_bracket",
			correct: "测试流水线管理</h2>",
			want:    "娴嬭瘯娴佹按绾跨鐞?/h2>",
		},
		{
			name:    "dropped_pair_then_eaten_bracket",
			correct: "个任务</span>",
			want:    "涓换鍔?/span>",
		},
		{
			name:    "lone_80_byte_becomes_euro",
			correct: "开始",
			want:    "寮€濮?",
		},
		{
			name:    "ascii_colon_survives",
			correct: "耗时:",
			want:    "鑰楁椂:",
		},
		{
			name:    "counter_suffix",
			correct: "次</span>",
			want:    "娆?/span>",
		},
		{
			name:    "action_title",
			correct: "执行流水线",
			want:    "鎵ц娴佹按绾?",
		},
		{
			name:    "delete_title",
			correct: "删除流水线",
			want:    "鍒犻櫎娴佹按绾?",
		},
		{
			name:    "pure_ascii_passes_through",
			correct: "plain ascii text <div/>",
			want:    "plain ascii text <div/>",
		},
		{
			name:    "empty_string",
			correct: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Garble(tt.correct)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGarble_RejectsInvalidUTF8(t *testing.T) {
	_, err := Garble("abc\xff\xfe")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestDeriveRule(t *testing.T) {
	rule, err := DeriveRule("排队中")

	require.NoError(t, err)
	assert.Equal(t, patch.KindLiteral, rule.Kind)
	assert.Equal(t, "鎺掗槦涓?", rule.Find)
	assert.Equal(t, "排队中", rule.Replace)
}

func TestDeriveRule_MatchesShippedTable(t *testing.T) {
	// the shipped rules for simple labels must be re-derivable
	labels := map[string]string{
		"通知":  "閫氱煡",
		"取消":  "鍙栨秷",
		"配置":  "閰嶇疆",
		"运行中": "杩愯涓?",
		"排队中": "鎺掗槦涓?",
	}

	for correct, broken := range labels {
		rule, err := DeriveRule(correct)
		require.NoError(t, err, "deriving %q", correct)
		assert.Equal(t, broken, rule.Find, "derived form of %q", correct)
	}
}

func TestDeriveRule_Errors(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantError string
	}{
		{
			name:      "empty_text",
			text:      "",
			wantError: "text is empty",
		},
		{
			name:      "pure_ascii_has_no_garbled_form",
			text:      "plain",
			wantError: "no garbled form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveRule(tt.text)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}
