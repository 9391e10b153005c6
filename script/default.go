package script

// Default returns the Control Plane automated testing deck: title,
// pipeline overview, provisioning, cluster architecture, test framework
// and summary.
func Default() Script {
	return Script{
		Title:   "Control Plane Automated Testing",
		Subject: "End-to-End Deployment & Testing Infrastructure",
		Slides: []SlideSpec{
			{
				Kind:     KindTitle,
				Title:    "Control Plane Automated Testing",
				Subtitle: "End-to-End Deployment & Testing Infrastructure",
			},
			{
				Kind:  KindPipeline,
				Title: "Automation Pipeline Overview",
				Stages: []Stage{
					{Title: "Launch\nAWS VMs", Subtitle: "aws role", Color: "highlight"},
					{Title: "Setup\nDocker Swarm", Subtitle: "docker_swarm", Color: "highlight"},
					{Title: "Deploy\nControl Plane", Subtitle: "deploy_cp", Color: "accent"},
					{Title: "Run\nTests", Subtitle: "http-apitest", Color: "success"},
				},
				Command: "# Run entire pipeline\n" +
					"cd ansible/launch_aws_setup && ansible-playbook site.yaml\n" +
					"cd control-plane && go test -v -tags=http_apitest ./http-apitest/tests/...",
			},
			{
				Kind:  KindContent,
				Title: "Infrastructure Provisioning (Ansible)",
				Bullets: []string{
					"AWS EC2 instances with Rocky Linux",
					"Configurable node count via ec2_instance_count",
					"Automatic SSH key generation and distribution",
					"Docker CE installation on all nodes",
					"Docker Swarm cluster initialization",
					"Control Plane deployment from ghcr.io/pgedge/control-plane",
				},
				Code: provisioningCode,
			},
			{
				Kind:  KindArchitecture,
				Title: "Docker Swarm Cluster Architecture",
				Nodes: []string{"Node 1 (Manager)", "Node 2 (Worker)", "Node 3 (Worker)"},
			},
			{
				Kind:  KindContent,
				Title: "HTTP API Test Framework",
				Bullets: []string{
					"Go-based test suite with http_apitest build tag",
					"Flexible configuration: env var or JSON file",
					"Tests cluster initialization (GET /v1/cluster/init)",
					"Tests node joining (POST /v1/cluster/join)",
					"Supports 1-11 node clusters",
					"Auto-configured by Ansible via nodes_config.json",
				},
				Code: testFrameworkCode,
			},
			{
				Kind:  KindContent,
				Title: "Summary & Benefits",
				Bullets: []string{
					"Infrastructure as Code - Reproducible AWS environment",
					"Container Orchestration - Docker Swarm for multi-node deployment",
					"Automated Deployment - Control Plane from official releases",
					"Integrated Testing - Seamless handoff to test framework",
					"Single Command - Full pipeline with ansible-playbook site.yaml",
					"Scalable - Change ec2_instance_count to add more nodes",
				},
			},
		},
	}
}

const provisioningCode = `# site.yaml
- name: Launch AWS infrastructure
  roles:
    - aws

- name: Setup Docker Swarm
  roles:
    - docker_swarm

- name: Deploy Control Plane
  roles:
    - deploy_control_plane

- name: Save IPs for testing
  roles:
    - save_node_ips`

const testFrameworkCode = `// nodes_config.json
{
  "nodes": [
    "13.127.241.95",
    "13.201.116.205",
    "13.233.245.218"
  ]
}

// Run tests
go test -v -tags=http_apitest \
  ./http-apitest/tests/...

// Or use environment variable
CP_NODE_IPS=ip1,ip2,ip3 \
  go test -v -tags=http_apitest ...`
