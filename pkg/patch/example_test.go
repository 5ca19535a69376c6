package patch_test

import (
	"fmt"

	"github.com/XiangYd616/Web-Test/pkg/patch"
)

func ExampleApply() {
	// A miniature ruleset: one garbled badge and one dangling attribute
	rules := []patch.Rule{
		{Kind: patch.KindLiteral, Find: "杩愯涓?", Replace: "运行中"},
		{Kind: patch.KindAppend, Find: `title="执行流水线`, Suffix: `"`},
	}

	content := `<span>杩愯涓?</span> <button title="执行流水线>`

	fixed, report := patch.Apply("PipelineManagement.tsx", content, patch.Ruleset{Rules: rules})

	fmt.Printf("Fixed: %s\n", fixed)
	fmt.Printf("Total: %d\n", report.Total())
	fmt.Printf("Changed: %v\n", report.Changed())

	// Output:
	// Fixed: <span>运行中</span> <button title="执行流水线">
	// Total: 2
	// Changed: true
}

func ExampleApply_idempotent() {
	rules := []patch.Rule{
		{Kind: patch.KindLiteral, Find: "閫氱煡", Replace: "通知"},
	}

	once, _ := patch.Apply("x.tsx", "閫氱煡", patch.Ruleset{Rules: rules})
	twice, report := patch.Apply("x.tsx", once, patch.Ruleset{Rules: rules})

	fmt.Printf("Once: %s\n", once)
	fmt.Printf("Twice: %s\n", twice)
	fmt.Printf("Second pass applied: %d\n", report.Total())

	// Output:
	// Once: 通知
	// Twice: 通知
	// Second pass applied: 0
}

func ExampleNormalize() {
	rules := []patch.Rule{
		{Kind: patch.KindLiteral, Find: "删除流水线", Replace: "删除流水线"}, // old == new, a no-op
		{Kind: patch.KindLiteral, Find: "鍙栨秷", Replace: "取消"},
		{Kind: patch.KindLiteral, Find: "鍙栨秷", Replace: "取消!"}, // duplicate, first wins
	}

	normalized := patch.Normalize(rules)
	for _, rule := range normalized {
		fmt.Printf("%s -> %s\n", rule.Find, rule.Replace)
	}

	// Output:
	// 鍙栨秷 -> 取消
}
