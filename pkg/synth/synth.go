// Package synth turns the budget notification stack into a cloud assembly
// and extracts its CloudFormation template.
package synth

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/stack"
)

// Options parameterize one synthesis.
type Options struct {
	StackName string
	Account   string
	Region    string
	OutDir    string

	// Lookups maps parameter store names to values already known, so that
	// synthesis does not need to reach the parameter store.
	Lookups map[string]string
}

// Result describes a synthesized stack.
type Result struct {
	StackName      string
	Template       map[string]any
	Digest         string
	ResourceCount  int
	MissingContext []string
	AssemblyDir    string
}

// ErrNoEnvironment is returned when the target account or region is unset.
// Parameter store lookups need both.
var ErrNoEnvironment = errors.New("deploy account and region must be set")

// SSMLookupKey is the context key under which the CDK caches a parameter
// store lookup.
func SSMLookupKey(account, region, parameter string) string {
	return fmt.Sprintf("ssm:account=%s:parameterName=%s:region=%s", account, parameter, region)
}

// NewApp creates a CDK app seeded with any pre-resolved lookups.
func NewApp(opts Options) awscdk.App {
	props := &awscdk.AppProps{}
	if opts.OutDir != "" {
		props.Outdir = jsii.String(opts.OutDir)
	}
	if len(opts.Lookups) > 0 {
		ctx := make(map[string]interface{}, len(opts.Lookups))
		for name, value := range opts.Lookups {
			ctx[SSMLookupKey(opts.Account, opts.Region, name)] = value
		}
		props.Context = &ctx
	}
	return awscdk.NewApp(props)
}

// Build declares the stack on app.
func Build(app awscdk.App, opts Options) *stack.BudgetNotificationStack {
	name := opts.StackName
	if name == "" {
		name = stack.DefaultStackName
	}
	return stack.NewBudgetNotificationStack(app, name, &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String(opts.Account),
			Region:  jsii.String(opts.Region),
		},
	})
}

// Synthesize builds and synthesizes the stack described by opts.
func Synthesize(opts Options) (res *Result, err error) {
	if opts.Account == "" || opts.Region == "" {
		return nil, ErrNoEnvironment
	}
	if opts.StackName == "" {
		opts.StackName = stack.DefaultStackName
	}

	// Construct errors surface as panics from the jsii runtime.
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("synthesize %s: %v", opts.StackName, r)
		}
	}()

	app := NewApp(opts)
	Build(app, opts)
	assembly := app.Synth(nil)

	artifact := assembly.GetStackByName(jsii.String(opts.StackName))
	template, err := normalize(artifact.Template())
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	digest, err := Digest(template)
	if err != nil {
		return nil, err
	}

	res = &Result{
		StackName:     opts.StackName,
		Template:      template,
		Digest:        digest,
		ResourceCount: ResourceCount(template),
		AssemblyDir:   *assembly.Directory(),
	}
	if missing := assembly.Manifest().Missing; missing != nil {
		for _, m := range *missing {
			res.MissingContext = append(res.MissingContext, *m.Key)
		}
		sort.Strings(res.MissingContext)
	}
	return res, nil
}

// normalize converts a jsii template value into plain JSON types.
func normalize(v interface{}) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Digest returns the SHA-256 of the template's canonical JSON form.
// Map keys are emitted sorted, so equal templates hash equally.
func Digest(template map[string]any) (string, error) {
	data, err := json.Marshal(template)
	if err != nil {
		return "", fmt.Errorf("marshal template: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// ResourceCount returns the number of entries in the template's Resources.
func ResourceCount(template map[string]any) int {
	resources, _ := template["Resources"].(map[string]any)
	return len(resources)
}
