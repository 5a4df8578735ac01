package config

// Merge returns base with every field supplied by o applied on top. Nil
// pointers and empty strings leave the base value untouched; merging the
// same overrides twice gives the same result as merging once. base is not
// modified.
func Merge(base SSHConfig, o Overrides) SSHConfig {
	out := base
	mergeString(&out.ClusterID, o.ClusterID)
	mergeString(&out.Username, o.Username)
	mergeInt(&out.JobUIPort, o.JobUIPort)
	mergeInt(&out.JobHistoryUIPort, o.JobHistoryUIPort)
	mergeInt(&out.WebUIPort, o.WebUIPort)
	mergeInt(&out.JupyterPort, o.JupyterPort)
	mergeInt(&out.NameNodeUIPort, o.NameNodeUIPort)
	mergeInt(&out.RStudioServerPort, o.RStudioServerPort)
	if o.Host != nil {
		out.Host = *o.Host
	}
	if o.Connect != nil {
		out.Connect = *o.Connect
	}
	return out
}

func mergeString(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

func mergeInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
