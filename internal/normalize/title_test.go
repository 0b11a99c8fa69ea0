package normalize

import "testing"

func TestDoctorTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Dr. med.", "Dr."},
		{"dr", "Dr."},
		{"Dr. Dr.", "Dr. Dr."},
		{"Prof. Dr.", "Prof. Dr."},
		{"Prof. Dr. Dr.", "Prof. Dr. Dr."},
		{"Professor", "Prof. Dr."},
		{"Priv.-Doz. Dr. med.", "PD Dr."},
		{"PD Dr. Dr.", "PD Dr. Dr."},
		{"M.D.(SYR)", "Dr."},
		{"MUDr.", "Dr."},
		{"Medico-Cirujano", "Dr."},
		{"Dipl. med", ""},
		{"Facharzt", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := DoctorTitle(tc.in); got != tc.want {
			t.Errorf("DoctorTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
