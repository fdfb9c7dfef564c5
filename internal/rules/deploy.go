package rules

import "regexp"

// Deployment: the deploy script by name (with or without a path qualifier)
// and deploy subcommands targeting named environments.
var (
	deployScriptRel  = regexp.MustCompile(`\./deploy\.sh\b`)
	deployScriptBare = regexp.MustCompile(`\bdeploy\.sh\b`)
	deployEnv        = regexp.MustCompile(`\bdeploy\s+(staging|production|prod|all)\b`)

	deployScriptMessage = "Autonomous mode: deploy.sh is blocked."
	deployEnvMessage    = "Autonomous mode: deployment commands are blocked."
)

func checkDeployment(cmd string) *MatchResult {
	if deployScriptRel.MatchString(cmd) || deployScriptBare.MatchString(cmd) {
		return blocked(CategoryDeployment, "deploy-script", deployScriptMessage)
	}

	if deployEnv.MatchString(cmd) {
		return blocked(CategoryDeployment, "deploy-environment", deployEnvMessage)
	}

	return nil
}

func deploymentInfo() []RuleInfo {
	return []RuleInfo{
		{Name: "deploy-script", Pattern: deployScriptBare.String(), Message: deployScriptMessage},
		{Name: "deploy-environment", Pattern: deployEnv.String(), Message: deployEnvMessage},
	}
}
