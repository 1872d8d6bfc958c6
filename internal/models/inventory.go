package models

import "time"

// InventorySchemaVersion tags per-account inventory files
const InventorySchemaVersion = "1.0"

// NATGateway is a NAT gateway attached to a subnet
type NATGateway struct {
	ID        string `yaml:"id"`
	State     string `yaml:"state"`
	ElasticIP string `yaml:"elastic_ip,omitempty"`
	PublicIP  string `yaml:"public_ip,omitempty"`
}

// Subnet is a VPC subnet. Type is "public" when a route table associated
// with the subnet has a route through an internet gateway, "private"
// otherwise.
type Subnet struct {
	ID         string      `yaml:"id"`
	CIDR       string      `yaml:"cidr"`
	AZ         string      `yaml:"az"`
	Type       string      `yaml:"type"`
	NATGateway *NATGateway `yaml:"nat_gateway,omitempty"`
}

// InternetGateway is an internet gateway attached to a VPC
type InternetGateway struct {
	ID    string `yaml:"id"`
	State string `yaml:"state"`
}

// VPC is a virtual network with its nested gateways and subnets
type VPC struct {
	ID               string            `yaml:"id"`
	CIDR             string            `yaml:"cidr"`
	IsDefault        bool              `yaml:"is_default"`
	InternetGateways []InternetGateway `yaml:"internet_gateways"`
	Subnets          []Subnet          `yaml:"subnets"`
}

// EC2Instance is a virtual machine instance
type EC2Instance struct {
	InstanceID         string            `yaml:"instance_id"`
	InstanceType       string            `yaml:"instance_type"`
	State              string            `yaml:"state"`
	PrivateIP          string            `yaml:"private_ip,omitempty"`
	PublicIP           string            `yaml:"public_ip,omitempty"`
	VPCID              string            `yaml:"vpc_id,omitempty"`
	SubnetID           string            `yaml:"subnet_id,omitempty"`
	LaunchTime         *time.Time        `yaml:"launch_time,omitempty"`
	Name               string            `yaml:"name,omitempty"`
	Platform           string            `yaml:"platform,omitempty"`
	ImageID            string            `yaml:"image_id,omitempty"`
	KeyName            string            `yaml:"key_name,omitempty"`
	SecurityGroups     []string          `yaml:"security_groups,omitempty"`
	IAMInstanceProfile string            `yaml:"iam_instance_profile,omitempty"`
	Tags               map[string]string `yaml:"tags,omitempty"`
	ARN                string            `yaml:"arn"`
	Region             string            `yaml:"region"`
}

// ElasticIP is an allocated elastic IP address
type ElasticIP struct {
	AllocationID  string `yaml:"allocation_id"`
	PublicIP      string `yaml:"public_ip"`
	AssociationID string `yaml:"association_id,omitempty"`
	Domain        string `yaml:"domain"`
	Region        string `yaml:"region"`
}

// S3Bucket is an object-storage bucket. Region is resolved per bucket
// since bucket listing is account-global.
type S3Bucket struct {
	Name    string     `yaml:"name"`
	Region  string     `yaml:"region"`
	ARN     string     `yaml:"arn"`
	Created *time.Time `yaml:"created,omitempty"`
}

// SQSQueue is a message queue
type SQSQueue struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	ARN    string `yaml:"arn"`
	Region string `yaml:"region"`
}

// SNSTopic is a notification topic
type SNSTopic struct {
	Name   string `yaml:"name"`
	ARN    string `yaml:"arn"`
	Region string `yaml:"region"`
}

// SESIdentity is a verified email address or domain
type SESIdentity struct {
	Identity           string `yaml:"identity"`
	Type               string `yaml:"type"`
	VerificationStatus string `yaml:"verification_status,omitempty"`
	Region             string `yaml:"region"`
}

// IAMRole is an identity role
type IAMRole struct {
	RoleName           string            `yaml:"role_name"`
	RoleID             string            `yaml:"role_id"`
	ARN                string            `yaml:"arn"`
	Path               string            `yaml:"path"`
	Description        string            `yaml:"description,omitempty"`
	CreateDate         *time.Time        `yaml:"create_date,omitempty"`
	MaxSessionDuration int32             `yaml:"max_session_duration"`
	Tags               map[string]string `yaml:"tags,omitempty"`
}

// IAMPolicy is a customer-managed policy
type IAMPolicy struct {
	PolicyName      string     `yaml:"policy_name"`
	PolicyID        string     `yaml:"policy_id"`
	ARN             string     `yaml:"arn"`
	Path            string     `yaml:"path"`
	Description     string     `yaml:"description,omitempty"`
	CreateDate      *time.Time `yaml:"create_date,omitempty"`
	UpdateDate      *time.Time `yaml:"update_date,omitempty"`
	AttachmentCount int32      `yaml:"attachment_count"`
}

// IAMUser is an identity user
type IAMUser struct {
	UserName   string     `yaml:"user_name"`
	UserID     string     `yaml:"user_id"`
	ARN        string     `yaml:"arn"`
	Path       string     `yaml:"path"`
	CreateDate *time.Time `yaml:"create_date,omitempty"`
}

// IAMGroup is an identity group
type IAMGroup struct {
	GroupName  string     `yaml:"group_name"`
	GroupID    string     `yaml:"group_id"`
	ARN        string     `yaml:"arn"`
	Path       string     `yaml:"path"`
	CreateDate *time.Time `yaml:"create_date,omitempty"`
}

// LambdaFunction is a compute function
type LambdaFunction struct {
	FunctionName        string   `yaml:"function_name"`
	Runtime             string   `yaml:"runtime,omitempty"`
	MemorySize          int32    `yaml:"memory_size"`
	Timeout             int32    `yaml:"timeout"`
	LastModified        string   `yaml:"last_modified,omitempty"`
	ARN                 string   `yaml:"arn"`
	Region              string   `yaml:"region"`
	VPCID               string   `yaml:"vpc_id,omitempty"`
	SubnetIDs           []string `yaml:"subnet_ids,omitempty"`
	SecurityGroupIDs    []string `yaml:"security_group_ids,omitempty"`
	ExecutionRoleARN    string   `yaml:"execution_role_arn,omitempty"`
	DeadLetterTargetARN string   `yaml:"dead_letter_target_arn,omitempty"`
	LayerARNs           []string `yaml:"layer_arns,omitempty"`
}

// RDSInstance is a managed database instance
type RDSInstance struct {
	DBInstanceIdentifier string `yaml:"db_instance_identifier"`
	Engine               string `yaml:"engine"`
	EngineVersion        string `yaml:"engine_version"`
	InstanceClass        string `yaml:"instance_class"`
	Status               string `yaml:"status"`
	Endpoint             string `yaml:"endpoint,omitempty"`
	Port                 int32  `yaml:"port,omitempty"`
	ARN                  string `yaml:"arn"`
	Region               string `yaml:"region"`
}

// RDSCluster is a managed database cluster
type RDSCluster struct {
	ClusterIdentifier string `yaml:"cluster_identifier"`
	Engine            string `yaml:"engine"`
	EngineVersion     string `yaml:"engine_version"`
	Status            string `yaml:"status"`
	Endpoint          string `yaml:"endpoint,omitempty"`
	ReaderEndpoint    string `yaml:"reader_endpoint,omitempty"`
	Port              int32  `yaml:"port,omitempty"`
	ARN               string `yaml:"arn"`
	Region            string `yaml:"region"`
}

// Route53Zone is a DNS hosted zone
type Route53Zone struct {
	ZoneID      string          `yaml:"zone_id"`
	Name        string          `yaml:"name"`
	IsPrivate   bool            `yaml:"is_private"`
	RecordCount int64           `yaml:"record_count"`
	Records     []Route53Record `yaml:"records,omitempty"`
}

// Route53Record is one record set in a hosted zone
type Route53Record struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	TTL     int64    `yaml:"ttl,omitempty"`
	Values  []string `yaml:"values"`
	IsAlias bool     `yaml:"is_alias,omitempty"`
}

// DynamoDBTable is a managed NoSQL table. Item count and size are the
// provider's approximations, refreshed roughly every six hours.
type DynamoDBTable struct {
	TableName string `yaml:"table_name"`
	Status    string `yaml:"status"`
	ItemCount int64  `yaml:"item_count"`
	SizeBytes int64  `yaml:"size_bytes"`
	ARN       string `yaml:"arn"`
	Region    string `yaml:"region"`
}

// ECSCluster is a container cluster
type ECSCluster struct {
	ClusterName        string `yaml:"cluster_name"`
	ClusterARN         string `yaml:"cluster_arn"`
	Status             string `yaml:"status"`
	ContainerInstances int32  `yaml:"registered_container_instances"`
	RunningTasks       int32  `yaml:"running_tasks"`
	PendingTasks       int32  `yaml:"pending_tasks"`
	ActiveServices     int32  `yaml:"active_services"`
	Region             string `yaml:"region"`
}

// ECSService is a long-running container service within a cluster
type ECSService struct {
	ServiceName    string `yaml:"service_name"`
	ServiceARN     string `yaml:"service_arn"`
	ClusterARN     string `yaml:"cluster_arn"`
	Status         string `yaml:"status"`
	DesiredCount   int32  `yaml:"desired_count"`
	RunningCount   int32  `yaml:"running_count"`
	LaunchType     string `yaml:"launch_type,omitempty"`
	TaskDefinition string `yaml:"task_definition"`
	Region         string `yaml:"region"`
}

// ECSTaskDefinition is a registered task definition revision
type ECSTaskDefinition struct {
	Family                  string   `yaml:"family"`
	TaskDefinitionARN       string   `yaml:"task_definition_arn"`
	Revision                int32    `yaml:"revision"`
	Status                  string   `yaml:"status"`
	CPU                     string   `yaml:"cpu,omitempty"`
	Memory                  string   `yaml:"memory,omitempty"`
	RequiresCompatibilities []string `yaml:"requires_compatibilities,omitempty"`
	Region                  string   `yaml:"region"`
}

// EKSCluster is a managed Kubernetes cluster
type EKSCluster struct {
	ClusterName     string     `yaml:"cluster_name"`
	ClusterARN      string     `yaml:"cluster_arn"`
	Status          string     `yaml:"status"`
	Version         string     `yaml:"version"`
	Endpoint        string     `yaml:"endpoint,omitempty"`
	PlatformVersion string     `yaml:"platform_version,omitempty"`
	CreatedAt       *time.Time `yaml:"created_at,omitempty"`
	Region          string     `yaml:"region"`
}

// EKSNodeGroup is a managed node group belonging to an EKS cluster
type EKSNodeGroup struct {
	NodeGroupName string   `yaml:"nodegroup_name"`
	NodeGroupARN  string   `yaml:"nodegroup_arn"`
	ClusterName   string   `yaml:"cluster_name"`
	Status        string   `yaml:"status"`
	InstanceTypes []string `yaml:"instance_types,omitempty"`
	DesiredSize   int32    `yaml:"desired_size"`
	MinSize       int32    `yaml:"min_size"`
	MaxSize       int32    `yaml:"max_size"`
	Region        string   `yaml:"region"`
}

// FargateSelector matches pods to a Fargate profile
type FargateSelector struct {
	Namespace string            `yaml:"namespace"`
	Labels    map[string]string `yaml:"labels,omitempty"`
}

// EKSFargateProfile is a Fargate profile belonging to an EKS cluster
type EKSFargateProfile struct {
	ProfileName         string            `yaml:"fargate_profile_name"`
	ProfileARN          string            `yaml:"fargate_profile_arn"`
	ClusterName         string            `yaml:"cluster_name"`
	Status              string            `yaml:"status"`
	PodExecutionRoleARN string            `yaml:"pod_execution_role_arn,omitempty"`
	Selectors           []FargateSelector `yaml:"selectors,omitempty"`
	Region              string            `yaml:"region"`
}

// ACMCertificate is a TLS certificate
type ACMCertificate struct {
	ARN                     string     `yaml:"certificate_arn"`
	DomainName              string     `yaml:"domain_name"`
	Status                  string     `yaml:"status"`
	CertificateType         string     `yaml:"certificate_type"`
	Issuer                  string     `yaml:"issuer,omitempty"`
	NotBefore               *time.Time `yaml:"not_before,omitempty"`
	NotAfter                *time.Time `yaml:"not_after,omitempty"`
	InUseBy                 []string   `yaml:"in_use_by,omitempty"`
	SubjectAlternativeNames []string   `yaml:"subject_alternative_names,omitempty"`
	Region                  string     `yaml:"region"`
}

// APIGatewayRestAPI is a v1 (REST) API
type APIGatewayRestAPI struct {
	ID           string            `yaml:"id"`
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description,omitempty"`
	EndpointType string            `yaml:"endpoint_type,omitempty"`
	CreatedDate  *time.Time        `yaml:"created_date,omitempty"`
	APIKeySource string            `yaml:"api_key_source,omitempty"`
	Tags         map[string]string `yaml:"tags,omitempty"`
	Region       string            `yaml:"region"`
}

// APIGatewayV2API is a v2 (HTTP or WebSocket) API
type APIGatewayV2API struct {
	APIID        string            `yaml:"api_id"`
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description,omitempty"`
	ProtocolType string            `yaml:"protocol_type"`
	APIEndpoint  string            `yaml:"api_endpoint,omitempty"`
	CreatedDate  *time.Time        `yaml:"created_date,omitempty"`
	Tags         map[string]string `yaml:"tags,omitempty"`
	Region       string            `yaml:"region"`
}

// CloudWatchLogGroup is a telemetry log group
type CloudWatchLogGroup struct {
	LogGroupName  string `yaml:"log_group_name"`
	ARN           string `yaml:"arn"`
	RetentionDays int32  `yaml:"retention_days,omitempty"`
	StoredBytes   int64  `yaml:"stored_bytes"`
	KMSKeyID      string `yaml:"kms_key_id,omitempty"`
	Region        string `yaml:"region"`
}

// CloudWatchAlarm is a telemetry metric alarm
type CloudWatchAlarm struct {
	AlarmName          string  `yaml:"alarm_name"`
	AlarmARN           string  `yaml:"alarm_arn"`
	Description        string  `yaml:"description,omitempty"`
	StateValue         string  `yaml:"state_value"`
	MetricName         string  `yaml:"metric_name,omitempty"`
	Namespace          string  `yaml:"namespace,omitempty"`
	Threshold          float64 `yaml:"threshold,omitempty"`
	ComparisonOperator string  `yaml:"comparison_operator,omitempty"`
	ActionsEnabled     bool    `yaml:"actions_enabled"`
	Region             string  `yaml:"region"`
}

// CloudFrontDistribution is a CDN distribution (global service)
type CloudFrontDistribution struct {
	ID                   string     `yaml:"id"`
	ARN                  string     `yaml:"arn"`
	DomainName           string     `yaml:"domain_name"`
	Status               string     `yaml:"status"`
	Enabled              bool       `yaml:"enabled"`
	PriceClass           string     `yaml:"price_class,omitempty"`
	Aliases              []string   `yaml:"aliases,omitempty"`
	Origins              []string   `yaml:"origins,omitempty"`
	ViewerProtocolPolicy string     `yaml:"viewer_protocol_policy,omitempty"`
	HTTPVersion          string     `yaml:"http_version,omitempty"`
	IsIPv6Enabled        bool       `yaml:"is_ipv6_enabled"`
	LastModifiedTime     *time.Time `yaml:"last_modified_time,omitempty"`
}

// SecretMetadata is secret metadata only; values are never read or stored
type SecretMetadata struct {
	Name             string            `yaml:"name"`
	ARN              string            `yaml:"arn"`
	Description      string            `yaml:"description,omitempty"`
	KMSKeyID         string            `yaml:"kms_key_id,omitempty"`
	RotationEnabled  bool              `yaml:"rotation_enabled"`
	LastRotatedDate  *time.Time        `yaml:"last_rotated_date,omitempty"`
	LastAccessedDate *time.Time        `yaml:"last_accessed_date,omitempty"`
	Tags             map[string]string `yaml:"tags,omitempty"`
	Region           string            `yaml:"region"`
}

// StateMachine is a workflow state machine
type StateMachine struct {
	Name         string     `yaml:"name"`
	ARN          string     `yaml:"arn"`
	Status       string     `yaml:"status"`
	MachineType  string     `yaml:"machine_type"`
	CreationDate *time.Time `yaml:"creation_date,omitempty"`
	Region       string     `yaml:"region"`
	RoleARN      string     `yaml:"role_arn,omitempty"`
	LogGroupARN  string     `yaml:"log_group_arn,omitempty"`
	LogLevel     string     `yaml:"log_level,omitempty"`
}

// SFNActivity is a workflow activity
type SFNActivity struct {
	Name         string     `yaml:"name"`
	ARN          string     `yaml:"arn"`
	CreationDate *time.Time `yaml:"creation_date,omitempty"`
	Region       string     `yaml:"region"`
}

// ClassicLoadBalancer is a classic (pre-v2) load balancer
type ClassicLoadBalancer struct {
	Name              string     `yaml:"name"`
	DNSName           string     `yaml:"dns_name"`
	Scheme            string     `yaml:"scheme"`
	VPCID             string     `yaml:"vpc_id,omitempty"`
	CreatedTime       *time.Time `yaml:"created_time,omitempty"`
	AvailabilityZones []string   `yaml:"availability_zones,omitempty"`
	Subnets           []string   `yaml:"subnets,omitempty"`
	SecurityGroups    []string   `yaml:"security_groups,omitempty"`
	Instances         []string   `yaml:"instances,omitempty"`
	HealthCheckTarget string     `yaml:"health_check_target,omitempty"`
	Region            string     `yaml:"region"`
}

// Pipeline is a deployment pipeline
type Pipeline struct {
	Name          string     `yaml:"name"`
	ARN           string     `yaml:"arn,omitempty"`
	RoleARN       string     `yaml:"role_arn,omitempty"`
	StageCount    int        `yaml:"stage_count"`
	Stages        []string   `yaml:"stages,omitempty"`
	PipelineType  string     `yaml:"pipeline_type,omitempty"`
	ExecutionMode string     `yaml:"execution_mode,omitempty"`
	Created       *time.Time `yaml:"created,omitempty"`
	Updated       *time.Time `yaml:"updated,omitempty"`
	Region        string     `yaml:"region"`
}

// AccountInventory aggregates all discovered resource records for one
// account at one point in time. Resource fields are sequences and never
// nil; absence of a resource type is an empty sequence, indistinguishable
// here from a failed discoverer (failure detail is only in the logs).
type AccountInventory struct {
	SchemaVersion string    `yaml:"schema_version"`
	AccountID     string    `yaml:"account_id"`
	AccountAlias  string    `yaml:"account_alias"`
	DiscoveredAt  time.Time `yaml:"discovered_at"`
	Region        string    `yaml:"region"`

	VPCs                    []VPC                    `yaml:"vpcs"`
	EC2Instances            []EC2Instance            `yaml:"ec2_instances"`
	ElasticIPs              []ElasticIP              `yaml:"elastic_ips"`
	S3Buckets               []S3Bucket               `yaml:"s3_buckets"`
	SQSQueues               []SQSQueue               `yaml:"sqs_queues"`
	SNSTopics               []SNSTopic               `yaml:"sns_topics"`
	SESIdentities           []SESIdentity            `yaml:"ses_identities"`
	IAMRoles                []IAMRole                `yaml:"iam_roles"`
	IAMPolicies             []IAMPolicy              `yaml:"iam_policies"`
	IAMUsers                []IAMUser                `yaml:"iam_users"`
	IAMGroups               []IAMGroup               `yaml:"iam_groups"`
	LambdaFunctions         []LambdaFunction         `yaml:"lambda_functions"`
	RDSInstances            []RDSInstance            `yaml:"rds_instances"`
	RDSClusters             []RDSCluster             `yaml:"rds_clusters"`
	Route53Zones            []Route53Zone            `yaml:"route53_zones"`
	DynamoDBTables          []DynamoDBTable          `yaml:"dynamodb_tables"`
	ECSClusters             []ECSCluster             `yaml:"ecs_clusters"`
	ECSServices             []ECSService             `yaml:"ecs_services"`
	ECSTaskDefinitions      []ECSTaskDefinition      `yaml:"ecs_task_definitions"`
	EKSClusters             []EKSCluster             `yaml:"eks_clusters"`
	EKSNodeGroups           []EKSNodeGroup           `yaml:"eks_node_groups"`
	EKSFargateProfiles      []EKSFargateProfile      `yaml:"eks_fargate_profiles"`
	ACMCertificates         []ACMCertificate         `yaml:"acm_certificates"`
	APIGatewayRestAPIs      []APIGatewayRestAPI      `yaml:"api_gateway_rest_apis"`
	APIGatewayV2APIs        []APIGatewayV2API        `yaml:"api_gateway_v2_apis"`
	LogGroups               []CloudWatchLogGroup     `yaml:"log_groups"`
	Alarms                  []CloudWatchAlarm        `yaml:"alarms"`
	CloudFrontDistributions []CloudFrontDistribution `yaml:"cloudfront_distributions"`
	Secrets                 []SecretMetadata         `yaml:"secrets"`
	StateMachines           []StateMachine           `yaml:"state_machines"`
	SFNActivities           []SFNActivity            `yaml:"sfn_activities"`
	ClassicLoadBalancers    []ClassicLoadBalancer    `yaml:"classic_load_balancers"`
	Pipelines               []Pipeline               `yaml:"pipelines"`
}

// EnsureDefaults replaces nil resource sequences with empty ones so the
// serialized form never contains nulls.
func (inv *AccountInventory) EnsureDefaults() {
	if inv.SchemaVersion == "" {
		inv.SchemaVersion = InventorySchemaVersion
	}
	if inv.VPCs == nil {
		inv.VPCs = []VPC{}
	}
	if inv.EC2Instances == nil {
		inv.EC2Instances = []EC2Instance{}
	}
	if inv.ElasticIPs == nil {
		inv.ElasticIPs = []ElasticIP{}
	}
	if inv.S3Buckets == nil {
		inv.S3Buckets = []S3Bucket{}
	}
	if inv.SQSQueues == nil {
		inv.SQSQueues = []SQSQueue{}
	}
	if inv.SNSTopics == nil {
		inv.SNSTopics = []SNSTopic{}
	}
	if inv.SESIdentities == nil {
		inv.SESIdentities = []SESIdentity{}
	}
	if inv.IAMRoles == nil {
		inv.IAMRoles = []IAMRole{}
	}
	if inv.IAMPolicies == nil {
		inv.IAMPolicies = []IAMPolicy{}
	}
	if inv.IAMUsers == nil {
		inv.IAMUsers = []IAMUser{}
	}
	if inv.IAMGroups == nil {
		inv.IAMGroups = []IAMGroup{}
	}
	if inv.LambdaFunctions == nil {
		inv.LambdaFunctions = []LambdaFunction{}
	}
	if inv.RDSInstances == nil {
		inv.RDSInstances = []RDSInstance{}
	}
	if inv.RDSClusters == nil {
		inv.RDSClusters = []RDSCluster{}
	}
	if inv.Route53Zones == nil {
		inv.Route53Zones = []Route53Zone{}
	}
	if inv.DynamoDBTables == nil {
		inv.DynamoDBTables = []DynamoDBTable{}
	}
	if inv.ECSClusters == nil {
		inv.ECSClusters = []ECSCluster{}
	}
	if inv.ECSServices == nil {
		inv.ECSServices = []ECSService{}
	}
	if inv.ECSTaskDefinitions == nil {
		inv.ECSTaskDefinitions = []ECSTaskDefinition{}
	}
	if inv.EKSClusters == nil {
		inv.EKSClusters = []EKSCluster{}
	}
	if inv.EKSNodeGroups == nil {
		inv.EKSNodeGroups = []EKSNodeGroup{}
	}
	if inv.EKSFargateProfiles == nil {
		inv.EKSFargateProfiles = []EKSFargateProfile{}
	}
	if inv.ACMCertificates == nil {
		inv.ACMCertificates = []ACMCertificate{}
	}
	if inv.APIGatewayRestAPIs == nil {
		inv.APIGatewayRestAPIs = []APIGatewayRestAPI{}
	}
	if inv.APIGatewayV2APIs == nil {
		inv.APIGatewayV2APIs = []APIGatewayV2API{}
	}
	if inv.LogGroups == nil {
		inv.LogGroups = []CloudWatchLogGroup{}
	}
	if inv.Alarms == nil {
		inv.Alarms = []CloudWatchAlarm{}
	}
	if inv.CloudFrontDistributions == nil {
		inv.CloudFrontDistributions = []CloudFrontDistribution{}
	}
	if inv.Secrets == nil {
		inv.Secrets = []SecretMetadata{}
	}
	if inv.StateMachines == nil {
		inv.StateMachines = []StateMachine{}
	}
	if inv.SFNActivities == nil {
		inv.SFNActivities = []SFNActivity{}
	}
	if inv.ClassicLoadBalancers == nil {
		inv.ClassicLoadBalancers = []ClassicLoadBalancer{}
	}
	if inv.Pipelines == nil {
		inv.Pipelines = []Pipeline{}
	}
}
