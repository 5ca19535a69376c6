package patch

// The generated pipeline component was written as UTF-8 but round-tripped
// through a GBK decode at some point, leaving every Chinese label garbled.
// The table below restores them. Ordering is load-bearing: longer phrases
// come before the short fragments they contain, and a few entries match
// text that earlier entries leave behind.

const builtinGlob = "**/*.tsx"

// brokenTemplates is the garbled template-picker array exactly as it
// appears in the component, trailing quotes eaten included.
const brokenTemplates = `                { id: 'cicd', name: 'CI/CD 娴佹按绾?, description: '鏍囧噯鐨勬寔缁泦鎴愭祴璇曟祦绋? },
                { id: 'monitoring', name: '鐩戞帶娴佹按绾?, description: '鐢熶骇鐜鐩戞帶娴嬭瘯' },
                { id: 'regression', name: '鍥炲綊娴嬭瘯娴佹按绾?, description: '瀹屾暣鐨勫洖褰掓祴璇曞浠? },
                { id: 'security', name: '瀹夊叏娴嬭瘯娴佹按绾?, description: '鍏ㄩ潰鐨勫畨鍏ㄦ祴璇曟祦绋? }`

const fixedTemplates = `                { id: 'cicd', name: 'CI/CD 流水线', description: '标准的持续集成测试流程' },
                { id: 'monitoring', name: '监控流水线', description: '生产环境监控测试' },
                { id: 'regression', name: '回归测试流水线', description: '完整的回归测试套件' },
                { id: 'security', name: '安全测试流水线', description: '全面的安全测试流程' }`

// Builtin returns the remediation table for PipelineManagement.tsx. The
// rules are already normalized; callers may use the set as-is.
func Builtin() Ruleset {
	return Ruleset{
		Name: "pipeline-management-gbk",
		Rules: []Rule{
			// page heading
			lit(`娴嬭瘯娴佹按绾跨鐞?/h2>`, `测试流水线管理</h2>`),

			// status badges
			lit(`杩愯涓?`, `运行中`),
			lit(`鎺掗槦涓?`, `排队中`),

			// toolbar and list heading
			lit(`鍒涘缓娴佹按绾?/span>`, `创建流水线</span>`),
			lit(`娴佹按绾垮垪琛?/h3>`, `流水线列表</h3>`),

			// action button titles; the first variant is a leftover from an
			// earlier manual pass that fixed only the leading word
			lit(`执行娴佹按绾?`, `执行流水线`),
			lit(`鎵ц娴佹按绾?`, `执行流水线`),
			lit(`鍒犻櫎娴佹按绾?`, `删除流水线`),

			// task counter
			lit(`涓换鍔?/span>`, `个任务</span>`),

			// feature captions and detail labels
			lit(`瀹氭椂鎵ц`, `定时执行`),
			lit(`閫氱煡`, `通知`),
			lit(`鎵ц`, `执行`),
			lit(`閰嶇疆`, `配置`),
			lit(`浠诲姟娴佺▼`, `任务流程`),
			lit(`渚濊禆浜?`, `依赖于`),
			lit(`寮€濮?`, `开始`),
			lit(`鑰楁椂:`, `耗时:`),
			lit(`閲嶈瘯:`, `重试:`),
			lit(`娆?/span>`, `次</span>`),
			lit(`璐ㄩ噺闂ㄧ`, `质量门控`),
			lit(`閫氱煡閰嶇疆`, `通知配置`),

			// empty state
			lit(`閫夋嫨涓€涓祦姘寸嚎`, `选择一个流水线`),
			lit(`浠庡乏渚у垪琛ㄤ腑閫夋嫨涓€涓祦姘寸嚎鏉ユ煡鐪嬭缁嗕俊鎭拰绠＄悊閰嶇疆`, `从左侧列表中选择一个流水线来查看详细信息和管理配置`),
			lit(`鍒涘缓鏂版祦姘寸嚎`, `创建新流水线`),
			lit(`鍙栨秷`, `取消`),

			// comments inside the generated script section
			lit(`switch鍔熻兘鍑芥暟`, `switch功能函数`),
			lit(`鍙傛暟瀵硅薄`, `参数对象`),
			lit(`杩斿洖缁撴灉`, `返回结果`),

			// the GBK decode ate the closing quote of two title attributes
			closeQuote(`title="执行流水线`, "close execute title attribute"),
			closeQuote(`title="删除流水线`, "close delete title attribute"),

			// template picker array, four entries restored in one swap
			{
				Kind:    KindBlock,
				Find:    brokenTemplates,
				Replace: fixedTemplates,
				Weight:  4,
				Files:   builtinGlob,
				Note:    "pipeline template array",
			},
		},
	}
}

func lit(find, replace string) Rule {
	return Rule{Kind: KindLiteral, Find: find, Replace: replace, Files: builtinGlob}
}

func closeQuote(prefix, note string) Rule {
	return Rule{Kind: KindAppend, Find: prefix, Suffix: `"`, Files: builtinGlob, Note: note}
}
