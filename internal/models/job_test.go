package models

import "testing"

func TestJobFullDescription(t *testing.T) {
	tests := []struct {
		name string
		job  Job
		want string
	}{
		{
			name: "all fields",
			job: Job{
				JobDescription:   "Build and run backend services",
				RoleSummary:      "Own the matching pipeline",
				Responsibilities: "Design APIs",
				Qualifications:   "3+ years of Go",
				Experience:       "Mid level",
			},
			want: "Build and run backend services Own the matching pipeline Design APIs 3+ years of Go Mid level",
		},
		{
			name: "empty fields omitted",
			job: Job{
				JobDescription: "Build and run backend services",
				Qualifications: "3+ years of Go",
			},
			want: "Build and run backend services 3+ years of Go",
		},
		{
			name: "all empty",
			job:  Job{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.job.FullDescription(); got != tt.want {
				t.Errorf("FullDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidApplicationStatus(t *testing.T) {
	for _, status := range []ApplicationStatus{StatusApplied, StatusInterviewed, StatusAppointmentSent, StatusHired, StatusRejected} {
		if !ValidApplicationStatus(status) {
			t.Errorf("expected %q to be valid", status)
		}
	}
	for _, status := range []ApplicationStatus{"", "pending", "APPLIED"} {
		if ValidApplicationStatus(status) {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}
