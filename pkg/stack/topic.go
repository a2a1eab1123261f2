package stack

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// Alert topic.
const (
	AlertTopicID          = "BudgetsAlertTopic"
	AlertTopicName        = "morningcode-budgets-alert"
	AlertTopicDisplayName = "morningcode budgets alert"

	BudgetsServicePrincipal = "budgets.amazonaws.com"
	PublishAction           = "SNS:Publish"
)

// newAlertTopic creates the single fan-out topic for budget alerts. Only the
// budgets service may publish to it.
func newAlertTopic(scope constructs.Construct) awssns.Topic {
	topic := awssns.NewTopic(scope, jsii.String(AlertTopicID), &awssns.TopicProps{
		TopicName:   jsii.String(AlertTopicName),
		DisplayName: jsii.String(AlertTopicDisplayName),
	})

	topic.AddToResourcePolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Effect:     awsiam.Effect_ALLOW,
		Actions:    jsii.Strings(PublishAction),
		Principals: &[]awsiam.IPrincipal{awsiam.NewServicePrincipal(jsii.String(BudgetsServicePrincipal), nil)},
		Resources:  jsii.Strings(*topic.TopicArn()),
	}))

	return topic
}
