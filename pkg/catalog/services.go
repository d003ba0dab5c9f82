package catalog

// Services in catalog order. The order drives interactive selection.
const (
	Amplify Service = iota
	APIGateway
	APIGatewayV2
	AppFlow
	AppMesh
	AppRunner
	AppSync
	Athena
	Batch
	Bedrock
	Billing
	Budgets
	Chatbot
	Cloud9
	CloudFormation
	CloudFront
	CloudTrail
	CloudWatch
	CodeBuild
	CodeCatalyst
	CodeCommit
	CodeDeploy
	CodePipeline
	Comprehend
	ComprehendMedical
	ControlTower
	DataZone
	DynamoDB
	EBS
	EC2
	ECR
	ECS
	EFS
	EKS
	ElasticBeanstalk
	ElasticLoadBalancing
	ElasticLoadBalancingV2
	EMR
	EventBridge
	EventBridgePipes
	EventBridgeScheduler
	Firehose
	Glue
	GlueDataBrew
	GuardDuty
	IAM
	IdentityStore
	IoTGreenGrass
	IoTGreenGrassV2
	Lambda
	QuickSight
	RAM
	RDS
	RedShift
	RedShiftData
	RedShiftServerless
	S3
	S3Glacier
	S3Tables
	SageMaker
	SecretsManager
	SES
	SQS
	StepFunctions
	SNS
	SSO
	STS
	UserNotifications
)

// table maps each Service to its display and canonical names. Entry i
// describes Service(i); Validate checks that invariant.
var table = []entry{
	{Amplify, "Amplify", "amplify"},
	{APIGateway, "APIGateway", "apigateway"},
	{APIGatewayV2, "APIGatewayV2", "apigatewayv2"},
	{AppFlow, "AppFlow", "appflow"},
	{AppMesh, "AppMesh", "appmesh"},
	{AppRunner, "AppRunner", "apprunner"},
	{AppSync, "AppSync", "appsync"},
	{Athena, "Athena", "athena"},
	{Batch, "Batch", "batch"},
	{Bedrock, "Bedrock", "bedrock"},
	{Billing, "Billing", "billing"},
	{Budgets, "Budgets", "budgets"},
	{Chatbot, "Chatbot", "chatbot"},
	{Cloud9, "Cloud9", "cloud9"},
	{CloudFormation, "CloudFormation", "cloudformation"},
	{CloudFront, "CloudFront", "cloudfront"},
	{CloudTrail, "CloudTrail", "cloudtrail"},
	{CloudWatch, "CloudWatch", "cloudwatch"},
	{CodeBuild, "CodeBuild", "codebuild"},
	{CodeCatalyst, "CodeCatalyst", "codecatalyst"},
	{CodeCommit, "CodeCommit", "codecommit"},
	{CodeDeploy, "CodeDeploy", "codedeploy"},
	{CodePipeline, "CodePipeline", "codepipeline"},
	{Comprehend, "Comprehend", "comprehend"},
	{ComprehendMedical, "ComprehendMedical", "comprehendmedical"},
	{ControlTower, "ControlTower", "controltower"},
	{DataZone, "DataZone", "datazone"},
	{DynamoDB, "DynamoDB", "dynamodb"},
	{EBS, "EBS", "ebs"},
	{EC2, "EC2", "ec2"},
	{ECR, "ECR", "ecr"},
	{ECS, "ECS", "ecs"},
	{EFS, "EFS", "efs"},
	{EKS, "EKS", "eks"},
	{ElasticBeanstalk, "ElasticBeanstalk", "elasticbeanstalk"},
	{ElasticLoadBalancing, "ElasticLoadBalancing", "elasticloadbalancing"},
	{ElasticLoadBalancingV2, "ElasticLoadBalancingV2", "elasticloadbalancingv2"},
	{EMR, "EMR", "emr"},
	{EventBridge, "EventBridge", "eventbridge"},
	{EventBridgePipes, "EventBridgePipes", "pipes"},
	{EventBridgeScheduler, "EventBridgeScheduler", "scheduler"},
	{Firehose, "Firehose", "firehose"},
	{Glue, "Glue", "glue"},
	{GlueDataBrew, "GlueDataBrew", "databrew"},
	{GuardDuty, "GuardDuty", "guardduty"},
	{IAM, "IAM", "iam"},
	{IdentityStore, "IdentityStore", "identitystore"},
	{IoTGreenGrass, "IoTGreenGrass", "greengrass"},
	{IoTGreenGrassV2, "IoTGreenGrassV2", "greengrassv2"},
	{Lambda, "Lambda", "lambda"},
	{QuickSight, "QuickSight", "quicksight"},
	{RAM, "RAM", "ram"},
	{RDS, "RDS", "rds"},
	{RedShift, "RedShift", "redshift"},
	{RedShiftData, "RedShiftData", "redshiftdata"},
	{RedShiftServerless, "RedShiftServerless", "redshiftserverless"},
	{S3, "S3", "s3"},
	{S3Glacier, "S3Glacier", "glacier"},
	{S3Tables, "S3Tables", "s3tables"},
	{SageMaker, "SageMaker", "sagemaker"},
	{SecretsManager, "SecretsManager", "secretsmanager"},
	{SES, "SES", "ses"},
	{SQS, "SQS", "sqs"},
	{StepFunctions, "StepFunctions", "sfn"},
	{SNS, "SNS", "sns"},
	{SSO, "SSO", "sso"},
	{STS, "STS", "sts"},
	{UserNotifications, "UserNotifications", "notifications"},
}
