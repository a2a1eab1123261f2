package stack

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awsbudgets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/model"
)

// newBudget declares spec as a CloudFormation budget whose rules all deliver
// to topic. The budget depends on the topic explicitly, not only through the
// ARN reference.
func newBudget(scope constructs.Construct, spec model.BudgetSpec, topic awssns.ITopic) awsbudgets.CfnBudget {
	notifications := make([]interface{}, 0, len(spec.Rules))
	for _, rule := range spec.Rules {
		notifications = append(notifications, &awsbudgets.CfnBudget_NotificationWithSubscribersProperty{
			Notification: &awsbudgets.CfnBudget_NotificationProperty{
				NotificationType:   jsii.String(string(rule.Type)),
				ComparisonOperator: jsii.String(string(rule.Comparison)),
				Threshold:          jsii.Number(rule.Threshold),
				ThresholdType:      jsii.String(string(rule.ThresholdType)),
			},
			Subscribers: &[]interface{}{
				&awsbudgets.CfnBudget_SubscriberProperty{
					SubscriptionType: jsii.String(string(rule.SubscriptionType)),
					Address:          topic.TopicArn(),
				},
			},
		})
	}

	budget := awsbudgets.NewCfnBudget(scope, jsii.String(spec.ID), &awsbudgets.CfnBudgetProps{
		Budget: &awsbudgets.CfnBudget_BudgetDataProperty{
			BudgetName: jsii.String(spec.Name),
			BudgetType: jsii.String(string(spec.Type)),
			TimeUnit:   jsii.String(string(spec.TimeUnit)),
			BudgetLimit: &awsbudgets.CfnBudget_SpendProperty{
				Amount: jsii.Number(spec.Limit.Amount),
				Unit:   jsii.String(spec.Limit.Unit),
			},
		},
		NotificationsWithSubscribers: &notifications,
	})
	budget.Node().AddDependency(topic)

	return budget
}
