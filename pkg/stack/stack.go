// Package stack declares the budget notification pipeline: a Slack channel
// configuration, the SNS topic it listens on, and the cost budgets that
// publish to that topic.
package stack

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsbudgets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awschatbot"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/model"
)

// DefaultStackName is the construct id of the stack.
const DefaultStackName = "AwsBudgetNotificationBotStack"

// Stack-wide tag.
const (
	ServiceTagKey   = "ServiceName"
	ServiceTagValue = "morningcode"
)

// BudgetNotificationStack holds the constructs of a synthesized stack.
type BudgetNotificationStack struct {
	Stack   awscdk.Stack
	Channel awschatbot.SlackChannelConfiguration
	Topic   awssns.Topic
	Budgets []awsbudgets.CfnBudget
}

// NewBudgetNotificationStack declares the chat binding, the alert topic and
// the daily and monthly budgets under scope.
func NewBudgetNotificationStack(scope constructs.Construct, id string, props *awscdk.StackProps) *BudgetNotificationStack {
	stack := awscdk.NewStack(scope, jsii.String(id), props)

	channel := newSlackChannel(stack)
	topic := newAlertTopic(stack)

	specs := model.Budgets()
	budgets := make([]awsbudgets.CfnBudget, 0, len(specs))
	for _, spec := range specs {
		budgets = append(budgets, newBudget(stack, spec, topic))
	}

	channel.AddNotificationTopic(topic)

	awscdk.Tags_Of(stack).Add(jsii.String(ServiceTagKey), jsii.String(ServiceTagValue), nil)

	return &BudgetNotificationStack{
		Stack:   stack,
		Channel: channel,
		Topic:   topic,
		Budgets: budgets,
	}
}
