package stack

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awschatbot"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsssm"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// Slack channel binding.
const (
	SlackChannelID                = "AlertSlackChannel"
	SlackChannelConfigurationName = "morningcode-budget-alert"

	// Parameter store entries holding the Slack identifiers.
	SlackWorkspaceParameter = "MORNINGCODE_SLACK_WORKSPACE_ID"
	SlackChannelParameter   = "MORNINGCODE_SLACK_CHANNEL_ID_INTEGRATION"
)

// MetricsReadActions lets the chat integration render CloudWatch data.
var MetricsReadActions = []string{
	"cloudwatch:Describe*",
	"cloudwatch:Get*",
	"cloudwatch:List*",
}

// newSlackChannel binds the alert channel. Workspace and channel ids are
// looked up in the parameter store at synthesis time.
func newSlackChannel(scope constructs.Construct) awschatbot.SlackChannelConfiguration {
	channel := awschatbot.NewSlackChannelConfiguration(scope, jsii.String(SlackChannelID), &awschatbot.SlackChannelConfigurationProps{
		SlackChannelConfigurationName: jsii.String(SlackChannelConfigurationName),
		SlackWorkspaceId:              awsssm.StringParameter_ValueFromLookup(scope, jsii.String(SlackWorkspaceParameter), nil),
		SlackChannelId:                awsssm.StringParameter_ValueFromLookup(scope, jsii.String(SlackChannelParameter), nil),
	})

	channel.AddToRolePolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Effect:    awsiam.Effect_ALLOW,
		Actions:   jsii.Strings(MetricsReadActions...),
		Resources: jsii.Strings("*"),
	}))

	return channel
}
