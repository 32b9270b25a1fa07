package suggest

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"go.uber.org/zap"

	"ecotrack/core/types"
	"ecotrack/internal/errors"
	"ecotrack/internal/logging"
)

var ruleFileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "rule", LabelNames: []string{"category"}},
	},
}

var ruleBlockSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "threshold", Required: true},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "tip"},
	},
}

var tipBlockSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "text", Required: true},
		{Name: "savings", Required: true},
		{Name: "impact", Required: false},
	},
}

// LoadFile loads a suggestion rule table from an .hcl or .json file
func LoadFile(path string) (*RuleTable, error) {
	parser := hclparse.NewParser()

	var file *hcl.File
	var diags hcl.Diagnostics
	if strings.HasSuffix(path, ".json") {
		file, diags = parser.ParseJSONFile(path)
	} else {
		file, diags = parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeConfig, "failed to parse suggestion rules", diags)
	}

	content, diags := file.Body.Content(ruleFileSchema)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeConfig, "unexpected suggestion rule structure", diags)
	}

	rules := make(map[types.Category]Rule)
	for _, block := range content.Blocks {
		category := types.Category(block.Labels[0])
		rule, err := decodeRule(block)
		if err != nil {
			return nil, err
		}
		rules[category] = rule
	}

	return NewRuleTable(rules), nil
}

// LoadOrDefault loads rules from path, falling back to the embedded
// defaults when path is empty or the file does not exist
func LoadOrDefault(path string) (*RuleTable, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logging.Warn("suggestion rule file not found, using embedded defaults",
			zap.String("path", path))
		return Default(), nil
	}
	return LoadFile(path)
}

func decodeRule(block *hcl.Block) (Rule, error) {
	content, diags := block.Body.Content(ruleBlockSchema)
	if diags.HasErrors() {
		return Rule{}, errors.Wrap(errors.TypeConfig, "invalid rule block", diags)
	}

	threshold, err := numberAttr(content.Attributes["threshold"])
	if err != nil {
		return Rule{}, err
	}
	if threshold <= 0 || threshold > 1 {
		return Rule{}, errors.Newf(errors.TypeConfig,
			"rule %q: threshold must be in (0,1], got %v", block.Labels[0], threshold)
	}

	rule := Rule{Threshold: threshold}
	for _, tipBlock := range content.Blocks {
		tip, err := decodeTip(tipBlock)
		if err != nil {
			return Rule{}, err
		}
		rule.Tips = append(rule.Tips, tip)
	}
	return rule, nil
}

func decodeTip(block *hcl.Block) (Tip, error) {
	content, diags := block.Body.Content(tipBlockSchema)
	if diags.HasErrors() {
		return Tip{}, errors.Wrap(errors.TypeConfig, "invalid tip block", diags)
	}

	text, err := stringAttr(content.Attributes["text"])
	if err != nil {
		return Tip{}, err
	}
	savings, err := numberAttr(content.Attributes["savings"])
	if err != nil {
		return Tip{}, err
	}

	tip := Tip{Text: text, Savings: savings}
	if attr, ok := content.Attributes["impact"]; ok {
		impact, err := stringAttr(attr)
		if err != nil {
			return Tip{}, err
		}
		tip.Impact = impact
	}
	return tip, nil
}

func numberAttr(attr *hcl.Attribute) (float64, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return 0, errors.Wrap(errors.TypeConfig, "failed to evaluate "+attr.Name, diags)
	}
	val, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, errors.Wrap(errors.TypeConfig, attr.Name+" is not a number", err)
	}
	f, _ := val.AsBigFloat().Float64()
	return f, nil
}

func stringAttr(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", errors.Wrap(errors.TypeConfig, "failed to evaluate "+attr.Name, diags)
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", errors.Wrap(errors.TypeConfig, attr.Name+" is not a string", err)
	}
	return val.AsString(), nil
}
