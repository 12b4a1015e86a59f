package seed

import doctorentity "clinic_backend/internal/feature/doctor/domain/entity"

// Roster は初期投入する医師の一覧を返します。呼び出しごとに新しいスライスを返します。
func Roster() []doctorentity.Doctor {
	return []doctorentity.Doctor{
		{
			Name: "Dr. Sarah Johnson", Specialty: "Cardiology", Rating: 4.9, Reviews: 124,
			Location: "Heart Care Center, Floor 3", Availability: "Mon, Wed, Fri", Fee: 150,
			Image: "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400",
		},
		{
			Name: "Dr. Michael Chen", Specialty: "Cardiology", Rating: 4.7, Reviews: 98,
			Location: "Heart Care Center, Floor 3", Availability: "Tue, Thu", Fee: 140,
			Image: "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400",
		},
		{
			Name: "Dr. Emily Rodriguez", Specialty: "Dermatology", Rating: 4.8, Reviews: 156,
			Location: "Skin Health Clinic, Floor 2", Availability: "Mon-Fri", Fee: 120,
			Image: "https://images.unsplash.com/photo-1594824476967-48c8b964273f?w=400",
		},
		{
			Name: "Dr. James Wilson", Specialty: "Neurology", Rating: 4.9, Reviews: 87,
			Location: "Neuroscience Institute, Floor 5", Availability: "Mon, Thu", Fee: 200,
			Image: "https://images.unsplash.com/photo-1622253692010-333f2da6031d?w=400",
		},
		{
			Name: "Dr. Priya Patel", Specialty: "Pediatrics", Rating: 4.9, Reviews: 203,
			Location: "Children's Wing, Floor 1", Availability: "Mon-Sat", Fee: 100,
			Image: "https://images.unsplash.com/photo-1651008376811-b90baee60c1f?w=400",
		},
		{
			Name: "Dr. Robert Kim", Specialty: "Orthopedics", Rating: 4.6, Reviews: 112,
			Location: "Bone & Joint Center, Floor 4", Availability: "Tue, Wed, Fri", Fee: 175,
			Image: "https://images.unsplash.com/photo-1537368910025-700350fe46c7?w=400",
		},
		{
			Name: "Dr. Lisa Thompson", Specialty: "General Medicine", Rating: 4.7, Reviews: 245,
			Location: "Main Building, Floor 1", Availability: "Mon-Fri", Fee: 80,
			Image: "https://images.unsplash.com/photo-1527613426441-4da17471b66d?w=400",
		},
		{
			Name: "Dr. David Martinez", Specialty: "General Medicine", Rating: 4.5, Reviews: 178,
			Location: "Main Building, Floor 1", Availability: "Mon-Sat", Fee: 75,
			Image: "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=400",
		},
	}
}
